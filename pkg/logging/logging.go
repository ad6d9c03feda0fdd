// Package logging builds the zap loggers used by the ribbon core and its tools.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/ribbon/pkg/errors"
)

// Options selects the logger flavour.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// Development switches to the human-readable console encoder.
	Development bool
}

// New creates a logger named "ribbon".
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if opts.Development {
		config = zap.NewDevelopmentConfig()
	}
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named("ribbon"), nil
}

// Install routes the global error handler through logger and returns the
// logger for chaining.
func Install(logger *zap.Logger, verbose bool) *zap.Logger {
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger
}
