// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w, or a human-readable console logger
// when env is "development".
func New(w io.Writer, env, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	}
	return logger.Level(lvl), nil
}
