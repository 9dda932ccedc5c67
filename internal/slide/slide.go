// Package slide holds an opened whole-slide image: its property set, its
// associated images and the pyramid levels registered by a recognizer.
package slide

import (
	"fmt"
	"io"
	"sort"

	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// Level is a registered pyramid level.
type Level struct {
	bifslide.LevelInfo

	dir         *tiff.Directory
	tilesAcross uint32
	tilesDown   uint32
}

// TileCount returns the number of tiles across and down.
func (l *Level) TileCount() (across, down uint32) {
	return l.tilesAcross, l.tilesDown
}

type associatedImage struct {
	bifslide.AssociatedImageInfo
	dir *tiff.Directory
}

// Slide is the result of a successful detection. A nil *Slide is accepted by
// the recognizers, the registration functions (AddAssociatedImage,
// AddTiffOps), Properties and Reset as an absent sink: validation runs in
// full but nothing is recorded. The other accessors need a real slide.
type Slide struct {
	name       string
	props      bifslide.Properties
	associated map[string]*associatedImage
	levels     []*Level

	file    *tiff.File
	decoder TileDecoder
	closer  io.Closer
}

// New creates an empty slide. name is reported as the slide path.
func New(name string) *Slide {
	return &Slide{
		name:       name,
		props:      bifslide.Properties{},
		associated: make(map[string]*associatedImage),
	}
}

// Name returns the name the slide was created with.
func (s *Slide) Name() string { return s.name }

// Properties returns the property set. It returns nil for a nil slide, which
// is itself a valid discarding sink.
func (s *Slide) Properties() bifslide.Properties {
	if s == nil {
		return nil
	}
	return s.props
}

// Vendor returns the openslide.vendor property.
func (s *Slide) Vendor() string {
	return s.props[bifslide.PropertyVendor]
}

// Reset discards everything a recognizer recorded, so that the next
// recognizer starts from an empty slide.
func (s *Slide) Reset() {
	if s == nil {
		return
	}
	s.props = bifslide.Properties{}
	s.associated = make(map[string]*associatedImage)
	s.levels = nil
	s.file = nil
	s.decoder = nil
}

// LevelCount returns the number of registered pyramid levels.
func (s *Slide) LevelCount() int { return len(s.levels) }

// Level returns level i, where 0 is the highest resolution.
func (s *Slide) Level(i int) (*Level, error) {
	if i < 0 || i >= len(s.levels) {
		return nil, fmt.Errorf("%w: level %d (slide has %d)", bifslide.ErrNoLevel, i, len(s.levels))
	}
	return s.levels[i], nil
}

// Levels returns the geometry of every level.
func (s *Slide) Levels() []bifslide.LevelInfo {
	out := make([]bifslide.LevelInfo, len(s.levels))
	for i, l := range s.levels {
		out[i] = l.LevelInfo
	}
	return out
}

// AssociatedImage returns the associated image registered under name.
func (s *Slide) AssociatedImage(name string) (bifslide.AssociatedImageInfo, bool) {
	img, ok := s.associated[name]
	if !ok {
		return bifslide.AssociatedImageInfo{}, false
	}
	return img.AssociatedImageInfo, true
}

// AssociatedImages returns every associated image, sorted by name.
func (s *Slide) AssociatedImages() []bifslide.AssociatedImageInfo {
	out := make([]bifslide.AssociatedImageInfo, 0, len(s.associated))
	for _, img := range s.associated {
		out = append(out, img.AssociatedImageInfo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ReadTile returns the decompressed bytes of one tile of a level.
func (s *Slide) ReadTile(level, col, row int) ([]byte, error) {
	l, err := s.Level(level)
	if err != nil {
		return nil, err
	}
	if col < 0 || row < 0 || uint32(col) >= l.tilesAcross || uint32(row) >= l.tilesDown {
		return nil, fmt.Errorf("tile (%d, %d) outside level %d (%dx%d tiles)",
			col, row, level, l.tilesAcross, l.tilesDown)
	}
	return s.decoder(s.file, l.dir, row*int(l.tilesAcross)+col)
}

// SetCloser registers c to be closed by Close.
func (s *Slide) SetCloser(c io.Closer) { s.closer = c }

// Close releases the underlying file, if the slide owns one.
func (s *Slide) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Report returns a serializable summary of the slide.
func (s *Slide) Report() bifslide.SlideReport {
	props := make(bifslide.Properties, len(s.props))
	for k, v := range s.props {
		props[k] = v
	}
	return bifslide.SlideReport{
		Path:             s.name,
		Vendor:           s.Vendor(),
		ID:               s.ID(),
		Levels:           s.Levels(),
		AssociatedImages: s.AssociatedImages(),
		Properties:       props,
	}
}
