package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// Log format names accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ZapLogger adapts a zap logger to bifslide.Logger.
// Verbose maps to the debug level, so it is only emitted when the
// underlying core is enabled for debug.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a JSON logger writing to stderr.
func NewZapLogger(verbose bool) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return NewZapLoggerFrom(l), nil
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.With(zap.String("component", "bifslide")).Sugar()}
}

// Verbose logs at debug level.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs at info level.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Error logs at error level.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered records.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// New returns the logger for the named format. An empty format means console.
func New(format string, verbose bool) (bifslide.Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatConsole:
		return NewConsoleLogger(verbose), nil
	case FormatJSON:
		l, err := NewZapLogger(verbose)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q (want %s or %s)",
			bifslide.ErrInvalidConfig, format, FormatConsole, FormatJSON)
	}
}
