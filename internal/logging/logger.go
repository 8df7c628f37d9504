package logging

import (
	"os"
	"strings"
	"time"

	"parksmart/internal/config"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger from config. Defaults to JSON at info
// level on stdout.
func New(cfg config.LoggingConfig) *zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil {
		level = parsed
	}

	output := zerolog.New(os.Stdout)
	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	logger := output.
		Level(level).
		With().
		Timestamp().
		Str("app", "parksmart").
		Logger()
	return &logger
}
