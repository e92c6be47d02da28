package config

import (
	"fmt"

	"go.uber.org/zap"
)

func zapLevel(level string) (zap.AtomicLevel, error) {
	return zap.ParseAtomicLevel(level)
}

// NewLogger builds the process logger described by c. The console format is
// zap's development encoder, json its production encoder; both write to stderr.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	level, err := zapLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	var zc zap.Config
	switch c.Format {
	case FormatJSON:
		zc = zap.NewProductionConfig()
	case FormatConsole, "":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Format)
	}
	zc.Level = level

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
