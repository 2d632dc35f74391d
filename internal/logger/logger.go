// Package logger builds the diagnostic logger used across terms.
// User-facing output never goes through it; it only reports what the tool
// is doing under the hood, on stderr.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console zerolog.Logger writing to w.
// Only warnings and errors are emitted unless verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
