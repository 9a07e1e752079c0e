package utils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger создает структурированный логгер с отметкой времени
func NewLogger(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "pantry").Logger()
}
