package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `hash: blake3
log:
  format: json
  verbose: true
codecs:
  disabled: [50000, 7]
scan:
  extensions: [".bif", ".svs"]
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "blake3", cfg.Hash)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, []uint16{50000, 7}, cfg.Codecs.Disabled)
	assert.Equal(t, []string{".bif", ".svs"}, cfg.Scan.Extensions)
}

func TestLoad_MinimalYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "hash: sha256\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sha256", cfg.Hash)
	assert.Empty(t, cfg.Log.Format)
	assert.Nil(t, cfg.Codecs.Disabled)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, bifslide.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestLoad_CodeOutOfRange(t *testing.T) {
	_, err := Load(writeConfig(t, "codecs:\n  disabled: [70000]\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := &ProjectConfig{Hash: "sha256", Log: LogConfig{Format: "console"}}

	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvHash:           "blake3",
		EnvLogFormat:      "json",
		EnvVerbose:        "true",
		EnvDisabledCodecs: "7, 50000,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "blake3", cfg.Hash)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, []uint16{7, 50000}, cfg.Codecs.Disabled)
}

func TestApplyEnv_EmptyValuesKeepFile(t *testing.T) {
	cfg := &ProjectConfig{Hash: "blake3", Codecs: CodecsConfig{Disabled: []uint16{7}}}

	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvHash: ""})))
	assert.Equal(t, "blake3", cfg.Hash)
	assert.Equal(t, []uint16{7}, cfg.Codecs.Disabled)

	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvDisabledCodecs: ""})))
	assert.Equal(t, []uint16{7}, cfg.Codecs.Disabled, "empty variable keeps the file's list")

	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvDisabledCodecs: "50000"})))
	assert.Equal(t, []uint16{50000}, cfg.Codecs.Disabled)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"verbose not bool", map[string]string{EnvVerbose: "sometimes"}},
		{"codec not number", map[string]string{EnvDisabledCodecs: "jpeg"}},
		{"codec too large", map[string]string{EnvDisabledCodecs: "65536"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&ProjectConfig{}).ApplyEnv(envMap(tt.env))
			require.Error(t, err)
			assert.True(t, errors.Is(err, bifslide.ErrInvalidConfig))
		})
	}
}

func TestToDetectConfig(t *testing.T) {
	t.Run("nil config gives defaults", func(t *testing.T) {
		var cfg *ProjectConfig
		assert.Equal(t, bifslide.DefaultDetectConfig(), cfg.ToDetectConfig())
	})

	t.Run("file values override defaults", func(t *testing.T) {
		cfg := &ProjectConfig{
			Hash:   "BLAKE3",
			Log:    LogConfig{Format: "JSON", Verbose: true},
			Codecs: CodecsConfig{Disabled: []uint16{7}},
			Scan:   ScanConfig{Extensions: []string{".bif"}},
		}
		got := cfg.ToDetectConfig()

		assert.Equal(t, "blake3", got.HashAlgorithm)
		assert.Equal(t, "json", got.LogFormat)
		assert.True(t, got.Verbose)
		assert.Equal(t, []uint16{7}, got.DisabledCodecs)
		assert.Equal(t, []string{".bif"}, got.Extensions)
		require.NoError(t, got.Validate())
	})

	t.Run("empty fields keep defaults", func(t *testing.T) {
		got := (&ProjectConfig{}).ToDetectConfig()
		assert.Equal(t, bifslide.DefaultHashAlgorithm, got.HashAlgorithm)
		assert.Equal(t, bifslide.DefaultExtensions, got.Extensions)
	})
}
