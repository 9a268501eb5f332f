// Package logger builds the application's structured JSON logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"itemapi/internal/config"
)

// New returns a JSON logger writing to stdout. Timestamps are emitted under
// "ts" in the configured timezone; APP_DEBUG lowers the level to debug.
func New(cfg *config.AppConfig) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg *config.AppConfig) zerolog.Logger {
	loc := Location(cfg.Timezone)

	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Location resolves a timezone name, falling back to UTC when it is unknown.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
