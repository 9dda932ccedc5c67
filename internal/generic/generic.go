// Package generic recognizes plain tiled TIFF files that no vendor
// recognizer claimed. Every tiled directory becomes a pyramid level.
package generic

import (
	"fmt"

	"github.com/vvka-141/bifslide/internal/checksum"
	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/internal/slide"
	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// Name is the recognizer name, also written as openslide.vendor.
const Name = bifslide.VendorGenericTIFF

// Try registers every tiled directory of cur, starting at the current one,
// as a pyramid level of s. It has the same contract as ventana.Try.
func Try(s *slide.Slide, cur *tiff.Cursor, codecs *codec.Registry, hash checksum.Accumulator) error {
	if !cur.Directory().IsTiled() {
		return fmt.Errorf("%w: TIFF is not tiled", bifslide.ErrFormatNotSupported)
	}

	var levels []bifslide.PyramidLevel
	for more := true; more; more = cur.Next() {
		dir := cur.Directory()
		if !dir.IsTiled() {
			continue
		}
		width, ok := dir.ImageWidth()
		if !ok {
			continue
		}

		compression, ok := dir.Compression()
		if !ok {
			compression = codec.None
		}
		if !codecs.IsConfigured(compression) {
			return fmt.Errorf("%w: directory %d: unsupported TIFF compression: %d",
				bifslide.ErrBadData, dir.Index(), compression)
		}

		levels = append(levels, bifslide.PyramidLevel{Directory: dir.Index(), Width: width})
	}

	order := slide.SortLevels(levels)
	if len(order) == 0 {
		return fmt.Errorf("%w: no pyramid levels found", bifslide.ErrFormatNotSupported)
	}

	s.Properties().Insert(bifslide.PropertyVendor, Name)
	return slide.AddTiffOps(s, cur.File(), order[0], order, slide.GenericTileReader(codecs), hash)
}
