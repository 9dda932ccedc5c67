package slide

import (
	"fmt"

	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// TileDecoder returns the stored bytes of tile index of dir, decompressed.
type TileDecoder func(f *tiff.File, dir *tiff.Directory, index int) ([]byte, error)

// GenericTileReader returns a TileDecoder for ordinary tiled TIFF
// directories. JPEG tiles get the directory's JPEGTables spliced in.
func GenericTileReader(codecs *codec.Registry) TileDecoder {
	return func(f *tiff.File, dir *tiff.Directory, index int) ([]byte, error) {
		raw, err := readRawTile(f, dir, index)
		if err != nil {
			return nil, err
		}

		compression, ok := dir.Compression()
		if !ok {
			compression = codec.None
		}
		tables, _ := dir.Bytes(tiff.TagJPEGTables)

		out, err := codecs.Decode(compression, raw, tables)
		if err != nil {
			return nil, fmt.Errorf("%w: directory %d tile %d: %v", bifslide.ErrBadData, dir.Index(), index, err)
		}
		return out, nil
	}
}

func readRawTile(f *tiff.File, dir *tiff.Directory, index int) ([]byte, error) {
	offsets, ok := dir.Uints(tiff.TagTileOffsets)
	if !ok {
		return nil, fmt.Errorf("%w: directory %d: missing tile offsets", bifslide.ErrBadData, dir.Index())
	}
	counts, ok := dir.Uints(tiff.TagTileByteCounts)
	if !ok {
		return nil, fmt.Errorf("%w: directory %d: missing tile byte counts", bifslide.ErrBadData, dir.Index())
	}
	if index < 0 || index >= len(offsets) || index >= len(counts) {
		return nil, fmt.Errorf("%w: directory %d: no tile %d", bifslide.ErrBadData, dir.Index(), index)
	}

	raw, err := f.ReadRange(offsets[index], counts[index])
	if err != nil {
		return nil, fmt.Errorf("%w: directory %d tile %d: %v", bifslide.ErrBadData, dir.Index(), index, err)
	}
	return raw, nil
}
