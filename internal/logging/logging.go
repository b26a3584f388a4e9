// Package logging builds and distributes the application's zerolog loggers.
//
// The CLI constructs one logger at startup from the effective logging
// configuration and threads it through context. Everything below the command
// layer obtains its logger with FromContext and tags it with a component name.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction. It mirrors the logging section of the
// config file after flag and environment overrides have been applied.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unparseable values fall back to info.
	Level string

	// Format selects "console" (human-readable, default) or "json".
	Format string

	// File, when non-empty, appends logs to the given path instead of stderr.
	File string
}

// Result describes the logger that was actually built, including whether the
// requested log file could be opened.
type Result struct {
	Logger zerolog.Logger

	// UsingFile is true when logs are going to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackReason is set when a file was requested but stderr is used instead.
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. A file open failure is not fatal: the logger
// falls back to stderr and the Result records the reason.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	res := Result{}
	var out io.Writer = os.Stderr

	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			res.FallbackReason = openErr.Error()
		} else {
			out = f
			res.UsingFile = true
			res.FilePath = cfg.File
			res.file = f
		}
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	res.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return res
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext attaches logger to ctx for retrieval via FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx. When none was attached,
// zerolog hands back a disabled logger, which keeps library code usable in
// tests without any logging setup.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
