package tiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrNotTIFF is returned by Open when the header is not a TIFF or BigTIFF header.
	ErrNotTIFF = errors.New("not a TIFF file")

	// ErrCorrupt is returned when the directory structure cannot be read.
	ErrCorrupt = errors.New("corrupt TIFF structure")
)

// File is a parsed TIFF or BigTIFF file.
type File struct {
	r     io.ReaderAt
	order binary.ByteOrder
	big   bool
	dirs  []*Directory
}

// Open reads the header and the whole directory chain of r.
//
// A failure while reading the first directory is an error. A failure on a
// later directory ends the chain there, the same way libtiff stops reporting
// further directories.
func Open(r io.ReaderAt) (*File, error) {
	var header [16]byte
	n, err := r.ReadAt(header[:], 0)
	if n < 8 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file too short", ErrNotTIFF)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	f := &File{r: r}
	switch string(header[:2]) {
	case leHeader:
		f.order = binary.LittleEndian
	case beHeader:
		f.order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: bad byte order mark %q", ErrNotTIFF, header[:2])
	}

	var first uint64
	switch magic := f.order.Uint16(header[2:4]); magic {
	case magicClassic:
		first = uint64(f.order.Uint32(header[4:8]))
	case magicBig:
		if n < 16 {
			return nil, fmt.Errorf("%w: BigTIFF header too short", ErrNotTIFF)
		}
		if f.order.Uint16(header[4:6]) != 8 || f.order.Uint16(header[6:8]) != 0 {
			return nil, fmt.Errorf("%w: unsupported BigTIFF offset size", ErrNotTIFF)
		}
		f.big = true
		first = f.order.Uint64(header[8:16])
	default:
		return nil, fmt.Errorf("%w: bad magic number %d", ErrNotTIFF, magic)
	}

	if first == 0 {
		return nil, fmt.Errorf("%w: no directories", ErrCorrupt)
	}
	if err := f.readChain(first); err != nil {
		return nil, err
	}
	return f, nil
}

// IsBigTIFF reports whether the file uses 64-bit offsets.
func (f *File) IsBigTIFF() bool { return f.big }

// ByteOrder returns the file's byte order.
func (f *File) ByteOrder() binary.ByteOrder { return f.order }

// DirectoryCount returns the number of directories in the chain.
func (f *File) DirectoryCount() int { return len(f.dirs) }

// Directory returns the directory at index.
func (f *File) Directory(index int) (*Directory, bool) {
	if index < 0 || index >= len(f.dirs) {
		return nil, false
	}
	return f.dirs[index], true
}

// ReadRange reads length bytes at offset.
func (f *File) ReadRange(offset, length uint64) ([]byte, error) {
	if offset > math.MaxInt64 || length > math.MaxInt32 {
		return nil, fmt.Errorf("%w: range %d+%d out of bounds", ErrCorrupt, offset, length)
	}
	buf := make([]byte, length)
	n, err := f.r.ReadAt(buf, int64(offset))
	if n == len(buf) {
		return buf, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return nil, err
}

func (f *File) readChain(offset uint64) error {
	seen := make(map[uint64]bool)
	for offset != 0 && len(f.dirs) < maxDirectories {
		if seen[offset] {
			break
		}
		seen[offset] = true

		dir, next, err := f.readDirectory(len(f.dirs), offset)
		if err != nil {
			if len(f.dirs) == 0 {
				return err
			}
			break
		}
		f.dirs = append(f.dirs, dir)
		offset = next
	}
	return nil
}

func (f *File) readDirectory(index int, offset uint64) (*Directory, uint64, error) {
	countLen, entryLen, nextLen := uint64(2), uint64(classicEntryLen), uint64(4)
	if f.big {
		countLen, entryLen, nextLen = 8, bigEntryLen, 8
	}

	head, err := f.ReadRange(offset, countLen)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: directory %d header: %v", ErrCorrupt, index, err)
	}
	var count uint64
	if f.big {
		count = f.order.Uint64(head)
	} else {
		count = uint64(f.order.Uint16(head))
	}
	if count > math.MaxUint16 {
		return nil, 0, fmt.Errorf("%w: directory %d has %d entries", ErrCorrupt, index, count)
	}

	body, err := f.ReadRange(offset+countLen, count*entryLen+nextLen)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: directory %d entries: %v", ErrCorrupt, index, err)
	}

	dir := &Directory{
		index:  index,
		offset: offset,
		fields: make(map[Tag]*Field, count),
	}
	for i := uint64(0); i < count; i++ {
		field, err := f.parseEntry(body[i*entryLen : (i+1)*entryLen])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: directory %d: %v", ErrCorrupt, index, err)
		}
		if field != nil {
			dir.fields[field.Tag] = field
		}
	}

	tail := body[count*entryLen:]
	var next uint64
	if f.big {
		next = f.order.Uint64(tail)
	} else {
		next = uint64(f.order.Uint32(tail))
	}
	return dir, next, nil
}

// parseEntry decodes one IFD entry. Entries with an unknown type are skipped
// (nil, nil), as TIFF 6.0 requires of readers.
func (f *File) parseEntry(entry []byte) (*Field, error) {
	tag := Tag(f.order.Uint16(entry[0:2]))
	typ := DataType(f.order.Uint16(entry[2:4]))

	var count uint64
	var value []byte
	if f.big {
		count = f.order.Uint64(entry[4:12])
		value = entry[12:20]
	} else {
		count = uint64(f.order.Uint32(entry[4:8]))
		value = entry[8:12]
	}

	size := uint64(typ.Size())
	if size == 0 {
		return nil, nil
	}
	if count > maxFieldSize/size {
		return nil, fmt.Errorf("tag %d: field too large (%d values)", tag, count)
	}
	total := size * count

	var data []byte
	if total <= uint64(len(value)) {
		data = append([]byte(nil), value[:total]...)
	} else {
		var off uint64
		if f.big {
			off = f.order.Uint64(value)
		} else {
			off = uint64(f.order.Uint32(value))
		}
		var err error
		data, err = f.ReadRange(off, total)
		if err != nil {
			return nil, fmt.Errorf("tag %d: %v", tag, err)
		}
	}

	return &Field{
		Tag:   tag,
		Type:  typ,
		Count: count,
		data:  data,
		order: f.order,
	}, nil
}
