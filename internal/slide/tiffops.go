package slide

import (
	"fmt"
	"strconv"

	"github.com/vvka-141/bifslide/internal/checksum"
	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// MaxQuickHashTileBytes bounds the tile data fed to the quickhash. Larger
// smallest levels disable the hash instead.
const MaxQuickHashTileBytes = 5 << 20

// tiffStringProperties are stored as tiff.<Name> and hashed, in this order.
var tiffStringProperties = []struct {
	tag  tiff.Tag
	name string
}{
	{tiff.TagImageDescription, "tiff.ImageDescription"},
	{tiff.TagMake, "tiff.Make"},
	{tiff.TagModel, "tiff.Model"},
	{tiff.TagSoftware, "tiff.Software"},
	{tiff.TagDateTime, "tiff.DateTime"},
	{tiff.TagArtist, "tiff.Artist"},
	{tiff.TagHostComputer, "tiff.HostComputer"},
	{tiff.TagCopyright, "tiff.Copyright"},
	{tiff.TagDocumentName, "tiff.DocumentName"},
}

// AddTiffOps registers levels (directory indices, highest resolution first)
// as the pyramid of s, read through decoder.
//
// Every level directory is validated before anything is recorded: it must be
// tiled and carry its dimensions and a tile offset for every tile. Standard
// level properties and tiff.* properties of directory 0 are written, and hash
// receives those properties and the raw tiles of the smallest level. primary
// must be the first entry of levels.
//
// A nil s runs the same validation and hashing without recording anything.
// A nil hash skips hashing.
func AddTiffOps(s *Slide, f *tiff.File, primary int, levels []int, decoder TileDecoder, hash checksum.Accumulator) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: no pyramid levels", bifslide.ErrFormatNotSupported)
	}
	if levels[0] != primary {
		return fmt.Errorf("primary directory %d is not the first level (%d)", primary, levels[0])
	}

	built := make([]*Level, 0, len(levels))
	for _, index := range levels {
		l, err := buildLevel(f, index)
		if err != nil {
			return err
		}
		built = append(built, l)
	}

	base := built[0]
	for _, l := range built {
		l.Downsample = (float64(base.Width)/float64(l.Width) + float64(base.Height)/float64(l.Height)) / 2
	}

	if hash != nil {
		if err := hashTiles(f, built[len(built)-1], hash); err != nil {
			return err
		}
	}

	var props bifslide.Properties
	if s != nil {
		props = s.props
	}
	if dir0, ok := f.Directory(0); ok {
		storeTIFFProperties(dir0, props, hash)
	}

	props.Insert(bifslide.PropertyLevelCount, strconv.Itoa(len(built)))
	for i, l := range built {
		prefix := "openslide.level[" + strconv.Itoa(i) + "]."
		props.Insert(prefix+"width", strconv.FormatUint(uint64(l.Width), 10))
		props.Insert(prefix+"height", strconv.FormatUint(uint64(l.Height), 10))
		props.Insert(prefix+"tile-width", strconv.FormatUint(uint64(l.TileWidth), 10))
		props.Insert(prefix+"tile-height", strconv.FormatUint(uint64(l.TileHeight), 10))
		props.Insert(prefix+"downsample", strconv.FormatFloat(l.Downsample, 'g', -1, 64))
	}

	if s == nil {
		return nil
	}
	s.levels = built
	s.file = f
	s.decoder = decoder
	return nil
}

func buildLevel(f *tiff.File, index int) (*Level, error) {
	dir, ok := f.Directory(index)
	if !ok {
		return nil, fmt.Errorf("%w: level directory %d does not exist", bifslide.ErrBadData, index)
	}
	if !dir.IsTiled() {
		return nil, fmt.Errorf("%w: level directory %d is not tiled", bifslide.ErrBadData, index)
	}

	width, okW := dir.ImageWidth()
	height, okH := dir.ImageLength()
	if !okW || !okH || width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: level directory %d: missing image dimensions", bifslide.ErrBadData, index)
	}
	tileWidth, okW := dir.TileWidth()
	tileHeight, okH := dir.TileLength()
	if !okW || !okH || tileWidth == 0 || tileHeight == 0 {
		return nil, fmt.Errorf("%w: level directory %d: missing tile dimensions", bifslide.ErrBadData, index)
	}

	compression, ok := dir.Compression()
	if !ok {
		compression = codec.None
	}

	across := (uint64(width) + uint64(tileWidth) - 1) / uint64(tileWidth)
	down := (uint64(height) + uint64(tileHeight) - 1) / uint64(tileHeight)

	offsets, okO := dir.Uints(tiff.TagTileOffsets)
	counts, okC := dir.Uints(tiff.TagTileByteCounts)
	if !okO || !okC {
		return nil, fmt.Errorf("%w: level directory %d: missing tile offsets", bifslide.ErrBadData, index)
	}
	if len(offsets) != len(counts) {
		return nil, fmt.Errorf("%w: level directory %d: %d tile offsets but %d byte counts",
			bifslide.ErrBadData, index, len(offsets), len(counts))
	}
	if uint64(len(offsets)) < across*down {
		return nil, fmt.Errorf("%w: level directory %d: %d tiles, need %d",
			bifslide.ErrBadData, index, len(offsets), across*down)
	}

	return &Level{
		LevelInfo: bifslide.LevelInfo{
			Directory:   index,
			Width:       width,
			Height:      height,
			TileWidth:   tileWidth,
			TileHeight:  tileHeight,
			Compression: compression,
		},
		dir:         dir,
		tilesAcross: uint32(across),
		tilesDown:   uint32(down),
	}, nil
}

func hashTiles(f *tiff.File, l *Level, hash checksum.Accumulator) error {
	counts, _ := l.dir.Uints(tiff.TagTileByteCounts)
	var total uint64
	for _, c := range counts {
		total += c
	}
	if total > MaxQuickHashTileBytes {
		hash.Disable()
		return nil
	}

	for i := range counts {
		raw, err := readRawTile(f, l.dir, i)
		if err != nil {
			return err
		}
		hash.Write(raw)
	}
	return nil
}

func storeTIFFProperties(dir *tiff.Directory, props bifslide.Properties, hash checksum.Accumulator) {
	for _, p := range tiffStringProperties {
		value, ok := dir.ASCII(p.tag)
		if !ok {
			continue
		}
		props.Insert(p.name, value)
		if hash != nil {
			hash.WriteString(p.name)
			hash.WriteString(value)
		}
	}

	if v, ok := dir.Float(tiff.TagXResolution); ok {
		props.Insert("tiff.XResolution", strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v, ok := dir.Float(tiff.TagYResolution); ok {
		props.Insert("tiff.YResolution", strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v, ok := dir.Uint(tiff.TagResolutionUnit); ok {
		props.Insert("tiff.ResolutionUnit", resolutionUnitName(v))
	}
}

func resolutionUnitName(unit uint64) string {
	switch unit {
	case 1:
		return "none"
	case 2:
		return "inch"
	case 3:
		return "centimeter"
	default:
		return "unknown"
	}
}
