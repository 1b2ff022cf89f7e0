// Package logging configures the global zerolog logger.
//
// The terminal belongs to the Bubble Tea program, so log output always goes to
// a file rather than stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls where and how log lines are written.
type Options struct {
	Path  string
	JSON  bool
	Debug bool
}

// Setup opens the log file and points the global logger at it.
// The returned closer must be closed on exit.
func Setup(opts Options) (io.Closer, error) {
	if dir := filepath.Dir(opts.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", opts.Path, err)
	}
	log.Logger = New(f, opts)
	return f, nil
}

// New builds a logger writing to w. Text output uses zerolog's console writer
// without colors, since the destination is a file.
func New(w io.Writer, opts Options) zerolog.Logger {
	var out io.Writer = w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
