package tiff

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Field is one decoded tag value.
type Field struct {
	Tag   Tag
	Type  DataType
	Count uint64

	data  []byte
	order binary.ByteOrder
}

// Bytes returns the raw value bytes in file byte order.
func (f *Field) Bytes() []byte { return f.data }

// Uint returns the i-th value of an integer field.
func (f *Field) Uint(i int) (uint64, bool) {
	if i < 0 || uint64(i) >= f.Count {
		return 0, false
	}
	switch f.Type {
	case TypeByte, TypeSByte, TypeUndefined:
		return uint64(f.data[i]), true
	case TypeShort, TypeSShort:
		return uint64(f.order.Uint16(f.data[2*i:])), true
	case TypeLong, TypeSLong, TypeIFD:
		return uint64(f.order.Uint32(f.data[4*i:])), true
	case TypeLong8, TypeSLong8, TypeIFD8:
		return f.order.Uint64(f.data[8*i:]), true
	default:
		return 0, false
	}
}

// Uints returns every value of an integer field.
func (f *Field) Uints() ([]uint64, bool) {
	values := make([]uint64, 0, f.Count)
	for i := 0; uint64(i) < f.Count; i++ {
		v, ok := f.Uint(i)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// Float returns the i-th value of a numeric field as a float64.
func (f *Field) Float(i int) (float64, bool) {
	if i < 0 || uint64(i) >= f.Count {
		return 0, false
	}
	switch f.Type {
	case TypeRational:
		num := f.order.Uint32(f.data[8*i:])
		den := f.order.Uint32(f.data[8*i+4:])
		if den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	case TypeSRational:
		num := int32(f.order.Uint32(f.data[8*i:]))
		den := int32(f.order.Uint32(f.data[8*i+4:]))
		if den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	case TypeFloat:
		return float64(math.Float32frombits(f.order.Uint32(f.data[4*i:]))), true
	case TypeDouble:
		return math.Float64frombits(f.order.Uint64(f.data[8*i:])), true
	default:
		v, ok := f.Uint(i)
		return float64(v), ok
	}
}

// ASCII returns the field as a string, cut at the first NUL.
func (f *Field) ASCII() string {
	data := f.data
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return string(data)
}

// Directory is one image file directory.
type Directory struct {
	index  int
	offset uint64
	fields map[Tag]*Field
}

// Index returns the position of the directory in the chain, starting at 0.
func (d *Directory) Index() int { return d.index }

// Offset returns the file offset of the directory.
func (d *Directory) Offset() uint64 { return d.offset }

// Field returns the field for tag.
func (d *Directory) Field(tag Tag) (*Field, bool) {
	f, ok := d.fields[tag]
	return f, ok
}

// Has reports whether the directory carries tag.
func (d *Directory) Has(tag Tag) bool {
	_, ok := d.fields[tag]
	return ok
}

// Uint returns the first value of an integer tag.
func (d *Directory) Uint(tag Tag) (uint64, bool) {
	f, ok := d.fields[tag]
	if !ok {
		return 0, false
	}
	return f.Uint(0)
}

// Uints returns every value of an integer tag.
func (d *Directory) Uints(tag Tag) ([]uint64, bool) {
	f, ok := d.fields[tag]
	if !ok {
		return nil, false
	}
	return f.Uints()
}

// Float returns the first value of a numeric tag.
func (d *Directory) Float(tag Tag) (float64, bool) {
	f, ok := d.fields[tag]
	if !ok {
		return 0, false
	}
	return f.Float(0)
}

// ASCII returns a string tag.
func (d *Directory) ASCII(tag Tag) (string, bool) {
	f, ok := d.fields[tag]
	if !ok || f.Type != TypeASCII {
		return "", false
	}
	return f.ASCII(), true
}

// Bytes returns the raw bytes of a tag.
func (d *Directory) Bytes(tag Tag) ([]byte, bool) {
	f, ok := d.fields[tag]
	if !ok {
		return nil, false
	}
	return f.Bytes(), true
}

// IsTiled reports whether the directory stores its image as tiles.
func (d *Directory) IsTiled() bool {
	return d.Has(TagTileWidth) && d.Has(TagTileLength)
}

// ImageWidth returns the ImageWidth tag.
func (d *Directory) ImageWidth() (uint32, bool) { return d.uint32(TagImageWidth) }

// ImageLength returns the ImageLength tag.
func (d *Directory) ImageLength() (uint32, bool) { return d.uint32(TagImageLength) }

// TileWidth returns the TileWidth tag.
func (d *Directory) TileWidth() (uint32, bool) { return d.uint32(TagTileWidth) }

// TileLength returns the TileLength tag.
func (d *Directory) TileLength() (uint32, bool) { return d.uint32(TagTileLength) }

// Compression returns the Compression tag.
func (d *Directory) Compression() (uint16, bool) {
	v, ok := d.Uint(TagCompression)
	if !ok || v > math.MaxUint16 {
		return 0, false
	}
	return uint16(v), true
}

// ImageDescription returns the ImageDescription tag.
func (d *Directory) ImageDescription() (string, bool) { return d.ASCII(TagImageDescription) }

// XMLPacket returns the embedded XMP/XML packet.
func (d *Directory) XMLPacket() ([]byte, bool) { return d.Bytes(TagXMLPacket) }

func (d *Directory) uint32(tag Tag) (uint32, bool) {
	v, ok := d.Uint(tag)
	if !ok || v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}
