package slide

import (
	"fmt"

	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// AddAssociatedImage registers dir as the associated image name.
//
// The directory must carry its dimensions and use a compression scheme
// available in codecs; otherwise ErrBadData is returned. With a nil slide the
// same checks run and nothing is registered.
func AddAssociatedImage(s *Slide, name string, dir *tiff.Directory, codecs *codec.Registry) error {
	width, ok := dir.ImageWidth()
	if !ok {
		return fmt.Errorf("%w: directory %d: missing image width", bifslide.ErrBadData, dir.Index())
	}
	height, ok := dir.ImageLength()
	if !ok {
		return fmt.Errorf("%w: directory %d: missing image length", bifslide.ErrBadData, dir.Index())
	}

	compression, ok := dir.Compression()
	if !ok {
		compression = codec.None
	}
	if !codecs.IsConfigured(compression) {
		return fmt.Errorf("%w: directory %d: unsupported TIFF compression: %d",
			bifslide.ErrBadData, dir.Index(), compression)
	}

	if s == nil {
		return nil
	}
	s.associated[name] = &associatedImage{
		AssociatedImageInfo: bifslide.AssociatedImageInfo{
			Name:      name,
			Directory: dir.Index(),
			Width:     width,
			Height:    height,
		},
		dir: dir,
	}
	return nil
}
