// Package logger builds the zap loggers used across the module.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings of a logger.
type Config struct {
	// Component is attached to every entry as the "component" field.
	Component string

	// Development switches to the human friendly encoder
	// and enables logging at DebugLevel and above.
	Development bool

	// Level overrides the minimum enabled level when set.
	Level *zapcore.Level
}

// New returns a new *zap.Logger that supports
// Google Stackdriver's structured logging.
// Logging is enabled at InfoLevel and above unless
// cfg says otherwise.
func New(cfg Config) (*zap.Logger, error) {
	zapCfg := zapdriver.NewProductionConfig()
	if cfg.Development {
		zapCfg = zapdriver.NewDevelopmentConfig()
	}

	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Level != nil {
		zapCfg.Level = zap.NewAtomicLevelAt(*cfg.Level)
	}

	if cfg.Component != "" {
		zapCfg.InitialFields = map[string]interface{}{
			"component": cfg.Component,
		}
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}

// Must returns the logger if err is nil and panics otherwise.
func Must(log *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}

	return log
}
