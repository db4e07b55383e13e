package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger writing to w.
// APP_ENV=dev (or development) uses a human-friendly console writer.
// Unknown levels fall back to info.
func NewLogger(env, level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if env == "dev" || env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
