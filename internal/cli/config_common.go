package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/bifslide/internal/config"
	"github.com/vvka-141/bifslide/internal/logging"
	"github.com/vvka-141/bifslide/internal/services"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if bifslide.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load bifslide.yaml: %w", err)
	}
	return projectCfg, nil
}

// buildDetectConfig resolves defaults, bifslide.yaml, the environment and
// the --verbose flag, in that order of precedence.
func buildDetectConfig(cmd *cobra.Command) (bifslide.DetectConfig, error) {
	projectCfg, err := loadProjectConfig(getConfigDir(cmd))
	if err != nil {
		return bifslide.DetectConfig{}, err
	}
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}
	if err := projectCfg.ApplyEnv(os.LookupEnv); err != nil {
		return bifslide.DetectConfig{}, err
	}

	cfg := projectCfg.ToDetectConfig()
	if getVerboseFlag(cmd) {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return bifslide.DetectConfig{}, err
	}
	return cfg, nil
}

// newDetector builds the logger and detector for a command run.
// The returned func flushes the logger and must be deferred.
func newDetector(cfg bifslide.DetectConfig) (*services.Detector, bifslide.Logger, func(), error) {
	logger, err := logging.New(cfg.LogFormat, cfg.Verbose)
	if err != nil {
		return nil, nil, nil, err
	}
	flush := func() {
		if z, ok := logger.(*logging.ZapLogger); ok {
			_ = z.Sync()
		}
	}

	det, err := services.NewDetector(cfg, logger)
	if err != nil {
		flush()
		return nil, nil, nil, err
	}

	logger.Verbose("Hash algorithm: %s", cfg.HashAlgorithm)
	logger.Verbose("Configured codecs: %v", det.Codecs().Codes())
	return det, logger, flush, nil
}
