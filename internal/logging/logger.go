// Package logging builds the zap logger used by the ngsclean commands.
// Logs go to <dir>/config.log, or to stderr when no directory is set.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem logger.
type Category string

const (
	CategoryBoot      Category = "boot"      // command start, flags
	CategoryDesign    Category = "design"    // design table loading and resolution
	CategoryConfig    Category = "config"    // configuration assembly and persistence
	CategoryReadCheck Category = "readcheck" // raw read inspection
)

// DefaultDir is where logs are written unless told otherwise.
const DefaultDir = "logs/prepare"

// DefaultFile is the log file name inside the log directory.
const DefaultFile = "config.log"

// Options configures New.
type Options struct {
	// Dir receives the log file. Empty logs to stderr only.
	Dir string
	// File defaults to DefaultFile.
	File string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Debug forces debug level.
	Debug bool
	// Quiet disables logging entirely.
	Quiet bool
}

// ParseLevel maps a level name onto a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// New builds a logger from opts, creating the log directory when needed.
func New(opts Options) (*zap.Logger, error) {
	if opts.Quiet {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		name := opts.File
		if name == "" {
			name = DefaultFile
		}
		cfg.OutputPaths = []string{filepath.Join(opts.Dir, name)}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Get returns the named sub-logger of a category.
func Get(base *zap.Logger, c Category) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(string(c))
}
