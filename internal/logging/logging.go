// Package logging configures the zerolog logger used for internal
// diagnostic/debug events (per-run timings, warning triggers). This is
// separate from the user-facing Error:/Warning:/Note: line protocol,
// which the CLI prints directly via fatih/color.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger writing to w (typically os.Stderr) at the
// given level. debug=false maps to zerolog.InfoLevel.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Default builds a stderr-backed logger at info level, used when the CLI
// has not been given --debug.
func Default() zerolog.Logger {
	return New(os.Stderr, false)
}
