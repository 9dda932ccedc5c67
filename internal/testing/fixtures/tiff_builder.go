package fixtures

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Tag and type codes written by the builder. Kept local so the fixtures do
// not import the reader they feed.
const (
	tagImageWidth       = 256
	tagImageLength      = 257
	tagCompression      = 259
	tagImageDescription = 270
	tagStripOffsets     = 273
	tagRowsPerStrip     = 278
	tagStripByteCounts  = 279
	tagTileWidth        = 322
	tagTileLength       = 323
	tagTileOffsets      = 324
	tagTileByteCounts   = 325
	tagJPEGTables       = 347
	tagXMLPacket        = 700

	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeUndefined = 7
	typeLong8     = 16
)

// Directory describes one image file directory to write.
type Directory struct {
	Width  uint32
	Height uint32

	// TileWidth and TileHeight of zero write a stripped (untiled) directory.
	TileWidth  uint32
	TileHeight uint32

	// Compression of zero omits the Compression tag.
	Compression uint16

	// Description and XMLPacket are omitted when empty.
	Description string
	XMLPacket   string

	JPEGTables []byte

	// Tiles holds the raw tile payloads. When nil, one small generated
	// payload is written per tile.
	Tiles [][]byte

	// ASCII holds extra ASCII tags (tag code to value).
	ASCII map[uint16]string

	OmitWidth       bool
	OmitHeight      bool
	OmitTileOffsets bool
}

// TileCount returns the number of tiles (or strips) the directory needs.
func (d Directory) TileCount() int {
	if d.TileWidth == 0 || d.TileHeight == 0 {
		return 1
	}
	across := (uint64(d.Width) + uint64(d.TileWidth) - 1) / uint64(d.TileWidth)
	down := (uint64(d.Height) + uint64(d.TileHeight) - 1) / uint64(d.TileHeight)
	return int(across * down)
}

// TIFFBuilder provides a fluent API for writing small TIFF and BigTIFF files
// used by detection tests.
//
// Example usage:
//
//	data := NewTIFFBuilder().
//	    BigTIFF().
//	    Add(Directory{Width: 4096, Height: 2048, TileWidth: 1024, TileHeight: 1024}).
//	    Build()
type TIFFBuilder struct {
	order byteOrder
	big   bool
	dirs  []Directory
}

// NewTIFFBuilder creates a builder for a little-endian classic TIFF.
func NewTIFFBuilder() *TIFFBuilder {
	return &TIFFBuilder{order: binary.LittleEndian}
}

// BigTIFF switches the output to the BigTIFF layout.
func (b *TIFFBuilder) BigTIFF() *TIFFBuilder {
	b.big = true
	return b
}

// BigEndian switches the output to big-endian ("MM") byte order.
func (b *TIFFBuilder) BigEndian() *TIFFBuilder {
	b.order = binary.BigEndian
	return b
}

// Add appends a directory.
func (b *TIFFBuilder) Add(dirs ...Directory) *TIFFBuilder {
	b.dirs = append(b.dirs, dirs...)
	return b
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type entry struct {
	tag   uint16
	typ   uint16
	count uint64
	data  []byte
}

// Build writes the file.
func (b *TIFFBuilder) Build() []byte {
	var out []byte
	var nextPtr int

	bom := "II"
	if b.order == binary.BigEndian {
		bom = "MM"
	}
	out = append(out, bom...)
	if b.big {
		out = b.order.AppendUint16(out, 43)
		out = b.order.AppendUint16(out, 8)
		out = b.order.AppendUint16(out, 0)
		nextPtr = len(out)
		out = b.order.AppendUint64(out, 0)
	} else {
		out = b.order.AppendUint16(out, 42)
		nextPtr = len(out)
		out = b.order.AppendUint32(out, 0)
	}

	inline := 4
	if b.big {
		inline = 8
	}

	for i, d := range b.dirs {
		tiles := d.Tiles
		if tiles == nil {
			tiles = make([][]byte, d.TileCount())
			for t := range tiles {
				tiles[t] = []byte(fmt.Sprintf("dir%d-tile%d", i, t))
			}
		}

		offsets := make([]uint64, len(tiles))
		counts := make([]uint64, len(tiles))
		for t, payload := range tiles {
			out = pad(out)
			offsets[t] = uint64(len(out))
			counts[t] = uint64(len(payload))
			out = append(out, payload...)
		}

		entries := b.entries(d, offsets, counts)
		valueAt := make(map[uint16]uint64)
		for _, e := range entries {
			if len(e.data) > inline {
				out = pad(out)
				valueAt[e.tag] = uint64(len(out))
				out = append(out, e.data...)
			}
		}

		out = pad(out)
		ifd := uint64(len(out))
		out = b.patch(out, nextPtr, ifd)

		if b.big {
			out = b.order.AppendUint64(out, uint64(len(entries)))
		} else {
			out = b.order.AppendUint16(out, uint16(len(entries)))
		}
		for _, e := range entries {
			out = b.order.AppendUint16(out, e.tag)
			out = b.order.AppendUint16(out, e.typ)
			if b.big {
				out = b.order.AppendUint64(out, e.count)
			} else {
				out = b.order.AppendUint32(out, uint32(e.count))
			}
			if off, ok := valueAt[e.tag]; ok {
				if b.big {
					out = b.order.AppendUint64(out, off)
				} else {
					out = b.order.AppendUint32(out, uint32(off))
				}
			} else {
				value := make([]byte, inline)
				copy(value, e.data)
				out = append(out, value...)
			}
		}

		nextPtr = len(out)
		if b.big {
			out = b.order.AppendUint64(out, 0)
		} else {
			out = b.order.AppendUint32(out, 0)
		}
	}

	return out
}

func (b *TIFFBuilder) entries(d Directory, offsets, counts []uint64) []entry {
	var entries []entry
	if !d.OmitWidth {
		entries = append(entries, b.longs(tagImageWidth, uint64(d.Width)))
	}
	if !d.OmitHeight {
		entries = append(entries, b.longs(tagImageLength, uint64(d.Height)))
	}
	if d.Compression != 0 {
		entries = append(entries, entry{tag: tagCompression, typ: typeShort, count: 1,
			data: b.order.AppendUint16(nil, d.Compression)})
	}
	if d.Description != "" {
		entries = append(entries, ascii(tagImageDescription, d.Description))
	}
	for tag, value := range d.ASCII {
		entries = append(entries, ascii(tag, value))
	}
	if d.XMLPacket != "" {
		entries = append(entries, entry{tag: tagXMLPacket, typ: typeByte,
			count: uint64(len(d.XMLPacket)), data: []byte(d.XMLPacket)})
	}
	if len(d.JPEGTables) > 0 {
		entries = append(entries, entry{tag: tagJPEGTables, typ: typeUndefined,
			count: uint64(len(d.JPEGTables)), data: d.JPEGTables})
	}

	if d.TileWidth != 0 && d.TileHeight != 0 {
		entries = append(entries,
			b.longs(tagTileWidth, uint64(d.TileWidth)),
			b.longs(tagTileLength, uint64(d.TileHeight)))
		if !d.OmitTileOffsets {
			entries = append(entries, b.offsets(tagTileOffsets, offsets), b.longs(tagTileByteCounts, counts...))
		}
	} else {
		entries = append(entries,
			b.offsets(tagStripOffsets, offsets),
			b.longs(tagRowsPerStrip, uint64(d.Height)),
			b.longs(tagStripByteCounts, counts...))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].tag < entries[j].tag })
	return entries
}

func (b *TIFFBuilder) longs(tag uint16, values ...uint64) entry {
	data := make([]byte, 0, 4*len(values))
	for _, v := range values {
		data = b.order.AppendUint32(data, uint32(v))
	}
	return entry{tag: tag, typ: typeLong, count: uint64(len(values)), data: data}
}

func (b *TIFFBuilder) offsets(tag uint16, values []uint64) entry {
	if !b.big {
		return b.longs(tag, values...)
	}
	data := make([]byte, 0, 8*len(values))
	for _, v := range values {
		data = b.order.AppendUint64(data, v)
	}
	return entry{tag: tag, typ: typeLong8, count: uint64(len(values)), data: data}
}

func (b *TIFFBuilder) patch(out []byte, at int, value uint64) []byte {
	if b.big {
		b.order.PutUint64(out[at:], value)
	} else {
		b.order.PutUint32(out[at:], uint32(value))
	}
	return out
}

func ascii(tag uint16, value string) entry {
	data := append([]byte(value), 0)
	return entry{tag: tag, typ: typeASCII, count: uint64(len(data)), data: data}
}

// pad keeps offsets word aligned, as TIFF 6.0 requires.
func pad(out []byte) []byte {
	if len(out)%2 == 1 {
		out = append(out, 0)
	}
	return out
}
