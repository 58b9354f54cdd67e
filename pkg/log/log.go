// Package log is a thin wrapper around zerolog shared by both entry points.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Logger returns the underlying zerolog logger.
func Logger() zerolog.Logger {
	return logger
}

// SetOutput replaces the log destination. Format "console" switches to
// human-readable output, anything else keeps JSON lines.
func SetOutput(w io.Writer, format string) {
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	logger = logger.Output(w)
}

// SetLevel sets the minimum level. Unknown levels fall back to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)
}

// Debug logs msg at debug level.
func Debug(msg string) {
	logger.Debug().Msg(msg)
}

// Info logs msg at info level.
func Info(msg string) {
	logger.Info().Msg(msg)
}

// Warn logs msg at warn level.
func Warn(msg string) {
	logger.Warn().Msg(msg)
}

// Error logs msg at error level.
func Error(msg string) {
	logger.Error().Msg(msg)
}

// Err logs msg at error level with err attached.
func Err(err error, msg string) {
	logger.Error().Err(err).Msg(msg)
}
