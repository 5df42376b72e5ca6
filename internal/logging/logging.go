package logging

import (
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing JSON lines to a rotating file. The TUI owns
// the terminal, so nothing may be written to stdout or stderr while the
// program runs.
func New(logFilePath string) zerolog.Logger {
	rotator := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	return zerolog.New(rotator).With().Timestamp().Logger()
}
