// Package worldlog wires up the zerolog logger shared by cmd/atlas and
// every pkg/ stage. Each command constructs one logger and threads it
// through pipeline.Run; nothing here holds package-level mutable state.
package worldlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-friendly zerolog.Logger. verbose lowers the level
// to debug; otherwise info-and-above only.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, for tests that don't
// want console noise.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
