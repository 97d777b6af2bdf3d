// Package obslog provides the structured logger used by the demo CLI.
//
// Grounded on the level/field shape of wyf-ACCEPT-eth2030's pkg/log
// (LogLevel, LogEntry with a message plus a field map, a
// level-from-string parser), rebuilt on top of zerolog rather than a
// hand-rolled formatter — see DESIGN.md for why a real structured
// logging library replaces that package's json.Marshal-per-line
// approach.
package obslog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger writing to w (os.Stderr if nil) at the
// given level. The level string is parsed the same way
// wyf-ACCEPT-eth2030's LevelFromString does: case-insensitive, with
// "warning" accepted as an alias for "warn", defaulting to info for
// anything unrecognized.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
}

// NewConsole builds a human-readable console logger, used by every
// subcommand of the demo CLI.
func NewConsole(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
