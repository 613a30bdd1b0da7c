package config

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger writing to w at the given level.
// Unknown levels fall back to info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("service", "boel").Logger()
}

// CreateLogger creates a logger from the configured level.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	return NewLogger(c.LogLevel(), w)
}
