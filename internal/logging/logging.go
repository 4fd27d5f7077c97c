// Package logging provides zerolog-based structured logging with context
// propagation for the load calculation engine and CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations recognised by Config.Output.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Log formats recognised by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit ("trace".."error"). Defaults to "info".
	Level string `yaml:"level"`

	// Format selects console (human-readable) or json output.
	Format string `yaml:"format"`

	// Output selects stderr, stdout, or file.
	Output string `yaml:"output"`

	// File is the log file path when Output is "file".
	File string `yaml:"file"`

	// Caller adds the caller file:line to each event.
	Caller bool `yaml:"caller"`
}

// DefaultConfig returns the configuration used when nothing is specified:
// info-level console output on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
		Output: OutputStderr,
	}
}

// New builds a logger from cfg. The returned cleanup function closes the log
// file when file output is configured; it is a no-op otherwise.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer
	cleanup := func() error { return nil }

	switch cfg.Output {
	case OutputFile:
		if cfg.File == "" {
			return zerolog.Nop(), cleanup, fmt.Errorf("log output is %q but no file path configured", OutputFile)
		}
		if mkErr := os.MkdirAll(filepath.Dir(cfg.File), 0750); mkErr != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("creating log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("opening log file: %w", openErr)
		}
		w = f
		cleanup = f.Close
	case OutputStdout:
		w = os.Stdout
	default:
		w = os.Stderr
	}

	if cfg.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}

	return logCtx.Logger(), cleanup, nil
}

// WithContext returns a child context carrying the logger.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled default when
// none was attached. Call sites add component/operation fields themselves.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
