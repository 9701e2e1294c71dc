package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns the process logger: JSON on stderr, human-readable output when
// ENV=development.
func New() zerolog.Logger {
	return NewWithWriter(os.Stderr, os.Getenv("ENV") == "development")
}

func NewWithWriter(w io.Writer, console bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Nop discards everything; handy as a default for injected loggers.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
