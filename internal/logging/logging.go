// Package logging configures the zerolog logger used for diagnostics.
// Run results and usage text are printed to stdout by the commands
// themselves; logs always go to stderr.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// DefaultLevel keeps a normal run quiet apart from warnings
const DefaultLevel = "warn"

// New returns a console logger writing to w at the given level
func New(w io.Writer, level string, verbose bool) zerolog.Logger {
	return zerolog.New(ConsoleWriter(w)).
		Level(ParseLevel(level, verbose)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Verbose forces debug;
// unknown names fall back to DefaultLevel.
func ParseLevel(level string, verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// ConsoleWriter returns a human-readable writer; colors are only used when
// w is a terminal.
func ConsoleWriter(w io.Writer) io.Writer {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
}
