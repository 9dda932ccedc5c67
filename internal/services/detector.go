package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/bifslide/internal/checksum"
	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/internal/files/filesystem"
	"github.com/vvka-141/bifslide/internal/generic"
	"github.com/vvka-141/bifslide/internal/slide"
	"github.com/vvka-141/bifslide/internal/tiff"
	"github.com/vvka-141/bifslide/internal/ventana"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// TryFunc is the signature shared by all recognizers.
type TryFunc func(s *slide.Slide, cur *tiff.Cursor, codecs *codec.Registry, hash checksum.Accumulator) error

// Recognizer pairs a vendor name with its detection function.
type Recognizer struct {
	Name string
	Try  TryFunc
}

// DefaultRecognizers returns the recognizers in the order they are tried.
// Vendor formats come before the generic TIFF fallback.
func DefaultRecognizers() []Recognizer {
	return []Recognizer{
		{Name: ventana.Name, Try: ventana.Try},
		{Name: bifslide.VendorGenericTIFF, Try: generic.Try},
	}
}

// Detector opens slides with a fixed codec set and hash algorithm.
// Safe for concurrent use; each call works on its own slide.
type Detector struct {
	codecs      *codec.Registry
	algorithm   string
	recognizers []Recognizer
	logger      bifslide.Logger
}

// NewDetector creates a Detector from a resolved configuration.
// Panics if logger is nil.
func NewDetector(cfg bifslide.DetectConfig, logger bifslide.Logger) (*Detector, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	algorithm := strings.ToLower(cfg.HashAlgorithm)
	if _, err := checksum.New(algorithm); err != nil {
		return nil, fmt.Errorf("%w: %v", bifslide.ErrInvalidConfig, err)
	}

	return &Detector{
		codecs:      codec.Default().Without(cfg.DisabledCodecs...),
		algorithm:   algorithm,
		recognizers: DefaultRecognizers(),
		logger:      logger,
	}, nil
}

// WithRecognizers returns a copy of d that tries recs instead of the defaults.
func (d *Detector) WithRecognizers(recs ...Recognizer) *Detector {
	cp := *d
	cp.recognizers = append([]Recognizer(nil), recs...)
	return &cp
}

// Codecs returns the codec registry recognizers are checked against.
func (d *Detector) Codecs() *codec.Registry { return d.codecs }

// Open detects the slide stored in r. name is used for logging and as the
// slide path. The returned slide reads tiles from r, so r must stay open
// while the slide is in use.
func (d *Detector) Open(r io.ReaderAt, name string) (*slide.Slide, error) {
	s := slide.New(name)
	if _, err := d.run(s, r, name); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenFile opens path from disk and detects the slide in it. The slide owns
// the file handle; call Close on the slide to release it.
func (d *Detector) OpenFile(path string) (*slide.Slide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open slide %s: %w", path, err)
	}

	s, err := d.Open(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.SetCloser(f)
	return s, nil
}

// Probe reports which vendor would accept r without recording anything.
func (d *Detector) Probe(r io.ReaderAt, name string) (string, error) {
	return d.run(nil, r, name)
}

// ScanFiles probes every file and collects one result per file. It stops
// early, returning what it has so far, when ctx is cancelled.
func (d *Detector) ScanFiles(ctx context.Context, fsProvider filesystem.FileSystemProvider, files []bifslide.SlideFile) []bifslide.ScanResult {
	results := make([]bifslide.ScanResult, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			d.logger.Error("Scan interrupted: %v", err)
			break
		}
		results = append(results, d.scanFile(fsProvider, file))
	}
	return results
}

func (d *Detector) scanFile(fsProvider filesystem.FileSystemProvider, file bifslide.SlideFile) bifslide.ScanResult {
	result := bifslide.ScanResult{Path: file.Path}

	r, err := fsProvider.OpenFile(file.Path)
	if err != nil {
		result.Kind = bifslide.ErrorKind(err)
		result.Error = err.Error()
		return result
	}
	defer r.Close()

	vendor, err := d.Probe(r, file.Path)
	if err != nil {
		result.Kind = bifslide.ErrorKind(err)
		result.Error = err.Error()
		return result
	}
	result.Vendor = vendor
	return result
}

// run tries each recognizer against r and returns the accepted vendor.
// A nil s runs in validation-only mode.
func (d *Detector) run(s *slide.Slide, r io.ReaderAt, name string) (string, error) {
	f, err := tiff.Open(r)
	if err != nil {
		if errors.Is(err, tiff.ErrNotTIFF) || errors.Is(err, tiff.ErrCorrupt) {
			return "", fmt.Errorf("%w: %s: %w", bifslide.ErrFormatNotSupported, name, err)
		}
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	cur := tiff.NewCursor(f)
	for _, rec := range d.recognizers {
		if err := cur.Seek(0); err != nil {
			return "", err
		}
		hash, err := checksum.New(d.algorithm)
		if err != nil {
			return "", fmt.Errorf("%w: %v", bifslide.ErrInvalidConfig, err)
		}

		d.logger.Verbose("Trying %s recognizer on %s", rec.Name, name)
		err = rec.Try(s, cur, d.codecs, hash)
		if err == nil {
			if sum, ok := hash.Sum(); ok {
				s.Properties().Insert(bifslide.PropertyQuickHash, sum)
			} else {
				d.logger.Verbose("Quickhash disabled for %s", name)
			}
			d.logger.Info("Detected %s slide: %s", rec.Name, name)
			return rec.Name, nil
		}
		if !bifslide.IsFallthrough(err) {
			d.logger.Verbose("%s recognizer rejected %s: %v", rec.Name, name, err)
			return "", fmt.Errorf("%s: %w", name, err)
		}

		d.logger.Verbose("%s recognizer passed on %s: %v", rec.Name, name, err)
		s.Reset()
	}

	return "", fmt.Errorf("%w: %s: no recognizer accepted the file", bifslide.ErrFormatNotSupported, name)
}
