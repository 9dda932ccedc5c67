package bifslide

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Properties is the property set of an opened slide: string keys to string
// values. A nil Properties is a valid sink that discards every insertion,
// which lets detection run in validation-only mode.
type Properties map[string]string

// Insert stores value under key. Insert on a nil Properties is a no-op.
func (p Properties) Insert(key, value string) {
	if p == nil {
		return
	}
	p[key] = value
}

// Keys returns the property names in lexical order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PyramidLevel is one directory accepted as a pyramid level during a
// directory walk.
type PyramidLevel struct {
	// Directory is the index into the container's directory table.
	Directory int

	// Width is the pixel width of that directory's image.
	Width uint32
}

// LevelInfo describes a registered pyramid level. Level 0 is the highest
// resolution.
type LevelInfo struct {
	Directory   int     `json:"directory" yaml:"directory"`
	Width       uint32  `json:"width" yaml:"width"`
	Height      uint32  `json:"height" yaml:"height"`
	TileWidth   uint32  `json:"tile_width" yaml:"tile_width"`
	TileHeight  uint32  `json:"tile_height" yaml:"tile_height"`
	Downsample  float64 `json:"downsample" yaml:"downsample"`
	Compression uint16  `json:"compression" yaml:"compression"`
}

// AssociatedImageInfo describes a non-pyramid image such as a label or thumbnail.
type AssociatedImageInfo struct {
	Name      string `json:"name" yaml:"name"`
	Directory int    `json:"directory" yaml:"directory"`
	Width     uint32 `json:"width" yaml:"width"`
	Height    uint32 `json:"height" yaml:"height"`
}

// SlideReport is the serializable summary of an opened slide.
type SlideReport struct {
	Path             string                `json:"path" yaml:"path"`
	Vendor           string                `json:"vendor" yaml:"vendor"`
	ID               string                `json:"id,omitempty" yaml:"id,omitempty"`
	Levels           []LevelInfo           `json:"levels" yaml:"levels"`
	AssociatedImages []AssociatedImageInfo `json:"associated_images" yaml:"associated_images"`
	Properties       Properties            `json:"properties" yaml:"properties"`
}

// SlideFile is a candidate slide discovered by the scanner.
type SlideFile struct {
	Path       string
	Name       string
	SizeBytes  int64
	ModifiedAt time.Time
}

// ScanResult is the outcome of probing one candidate file.
type ScanResult struct {
	Path   string `json:"path"`
	Vendor string `json:"vendor,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OK reports whether a recognizer accepted the file.
func (r ScanResult) OK() bool {
	return r.Error == ""
}

// DetectConfig contains the resolved settings for a detection run.
type DetectConfig struct {
	// HashAlgorithm selects the quickhash algorithm ("sha256" or "blake3").
	HashAlgorithm string

	// DisabledCodecs lists compression schemes treated as unavailable.
	DisabledCodecs []uint16

	// Extensions lists file extensions the scanner treats as slide candidates.
	Extensions []string

	// LogFormat selects the logger ("console" or "json").
	LogFormat string

	// Verbose enables detailed logging
	Verbose bool
}

// DefaultDetectConfig returns a configuration with all defaults applied.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{
		HashAlgorithm: DefaultHashAlgorithm,
		Extensions:    append([]string(nil), DefaultExtensions...),
		LogFormat:     DefaultLogFormat,
	}
}

// Validate checks if the DetectConfig has valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *DetectConfig) Validate() error {
	var errs []error

	switch strings.ToLower(c.HashAlgorithm) {
	case "", "sha256", "blake3":
	default:
		errs = append(errs, fmt.Errorf("unknown hash algorithm %q: %w", c.HashAlgorithm, ErrInvalidConfig))
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q: %w", c.LogFormat, ErrInvalidConfig))
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot: %w", ext, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}
