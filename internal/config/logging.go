package config

import (
	"time"

	"github.com/rs/zerolog"
)

// LogLevel maps a verbosity level to a zerolog level.
func LogLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= Quiet:
		return zerolog.ErrorLevel
	case verbosity == Normal:
		return zerolog.WarnLevel
	case verbosity == Verbose:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Logger builds the program logger writing to LogFile.
func (c *Config) Logger() zerolog.Logger {
	w := c.LogFile
	if w == nil {
		return zerolog.Nop()
	}
	if !c.LogJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(LogLevel(c.Verbosity)).With().Timestamp().Logger()
}
