// Package ventana recognizes Ventana (Roche) BIF slides.
//
// A Ventana slide is a tiled BigTIFF. Directory 0 is the slide label and
// directory 1 the thumbnail. Every later directory whose ImageDescription
// carries a level=N marker is a pyramid level, and the level=0 directory
// holds an XML packet with the scanner's iScan metadata.
package ventana

import (
	"bytes"
	"fmt"

	"github.com/vvka-141/bifslide/internal/checksum"
	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/internal/metadata"
	"github.com/vvka-141/bifslide/internal/slide"
	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// Name is the recognizer name, also written as openslide.vendor.
const Name = bifslide.VendorVentana

// levelMarker is the ImageDescription property naming a pyramid level.
const levelMarker = "level"

// baseLevel is the level marker value of the full-resolution directory.
const baseLevel = "0"

// Try walks the directories of cur, starting at the current one, and
// registers the Ventana pyramid on s.
//
// ErrFormatNotSupported means the file is not a Ventana slide and another
// recognizer may be tried. Any other error means the file is a damaged
// Ventana slide. A nil s validates without recording; errors are the same.
//
// The vendor property is written as soon as the file is known to be tiled,
// so a failed attempt can leave it behind. Callers discard s on error.
func Try(s *slide.Slide, cur *tiff.Cursor, codecs *codec.Registry, hash checksum.Accumulator) error {
	if !cur.Directory().IsTiled() {
		return fmt.Errorf("%w: TIFF is not tiled", bifslide.ErrFormatNotSupported)
	}

	props := s.Properties()
	props.Insert(bifslide.PropertyVendor, Name)

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

		switch dir.Index() {
		case 0:
			if err := slide.AddAssociatedImage(s, bifslide.AssociatedLabel, dir, codecs); err != nil {
				return fmt.Errorf("can't read associated label image: %w", err)
			}
			continue
		case 1:
			if err := slide.AddAssociatedImage(s, bifslide.AssociatedThumbnail, dir, codecs); err != nil {
				return fmt.Errorf("can't read associated thumbnail image: %w", err)
			}
			continue
		}

		desc, ok := dir.ImageDescription()
		if !ok {
			continue
		}
		level, ok := metadata.FindProperty(desc, levelMarker, false)
		if !ok {
			continue
		}

		compression, ok := dir.Compression()
		if !ok {
			return fmt.Errorf("%w: directory %d: can't read compression scheme", bifslide.ErrBadData, dir.Index())
		}
		if !codecs.IsConfigured(compression) {
			return fmt.Errorf("%w: directory %d: unsupported TIFF compression: %d",
				bifslide.ErrBadData, dir.Index(), compression)
		}

		if level == baseLevel {
			packet, ok := dir.XMLPacket()
			if !ok || !bytes.Contains(packet, []byte(metadata.ScanInfoMarker)) {
				return fmt.Errorf("%w: not a Ventana slide", bifslide.ErrFormatNotSupported)
			}
			if err := metadata.ParseScanInfo(packet, props); err != nil {
				return err
			}
		}

		levels = append(levels, bifslide.PyramidLevel{Directory: dir.Index(), Width: width})
	}

	order := slide.SortLevels(levels)
	if len(order) == 0 {
		return fmt.Errorf("%w: no pyramid levels found", bifslide.ErrFormatNotSupported)
	}
	return slide.AddTiffOps(s, cur.File(), order[0], order, slide.GenericTileReader(codecs), hash)
}
