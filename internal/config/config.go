package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables read by ApplyEnv.
const (
	EnvHash           = "BIFSLIDE_HASH"
	EnvLogFormat      = "BIFSLIDE_LOG_FORMAT"
	EnvVerbose        = "BIFSLIDE_VERBOSE"
	EnvDisabledCodecs = "BIFSLIDE_DISABLED_CODECS"
)

type LogConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

type CodecsConfig struct {
	Disabled []uint16 `yaml:"disabled,omitempty"`
}

type ScanConfig struct {
	Extensions []string `yaml:"extensions,omitempty"`
}

type ProjectConfig struct {
	Hash   string       `yaml:"hash"`
	Log    LogConfig    `yaml:"log"`
	Codecs CodecsConfig `yaml:"codecs"`
	Scan   ScanConfig   `yaml:"scan"`
}

const ConfigFileName = bifslide.ConfigFileName

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", bifslide.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from BIFSLIDE_* environment variables.
// lookup is normally os.LookupEnv.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHash); ok && v != "" {
		c.Hash = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", bifslide.ErrInvalidConfig, EnvVerbose, v)
		}
		c.Log.Verbose = b
	}
	if v, ok := lookup(EnvDisabledCodecs); ok && v != "" {
		codes, err := parseCodes(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", bifslide.ErrInvalidConfig, EnvDisabledCodecs, err)
		}
		c.Codecs.Disabled = codes
	}
	return nil
}

func parseCodes(list string) ([]uint16, error) {
	var codes []uint16
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid compression code %q", part)
		}
		codes = append(codes, uint16(n))
	}
	return codes, nil
}

// ToDetectConfig resolves the file settings over the defaults.
// A nil config yields the defaults.
func (c *ProjectConfig) ToDetectConfig() bifslide.DetectConfig {
	out := bifslide.DefaultDetectConfig()
	if c == nil {
		return out
	}
	if c.Hash != "" {
		out.HashAlgorithm = strings.ToLower(c.Hash)
	}
	if c.Log.Format != "" {
		out.LogFormat = strings.ToLower(c.Log.Format)
	}
	out.Verbose = c.Log.Verbose
	if len(c.Codecs.Disabled) > 0 {
		out.DisabledCodecs = append([]uint16(nil), c.Codecs.Disabled...)
	}
	if len(c.Scan.Extensions) > 0 {
		out.Extensions = append([]string(nil), c.Scan.Extensions...)
	}
	return out
}
