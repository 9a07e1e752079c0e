package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "SQLITE_PATH", "STORAGE_KEY", "LOCALE", "HIGHLIGHT_MS", "LOG_LEVEL", "SEED_DEFAULTS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "pantry.db", cfg.SQLitePath)
	assert.Equal(t, "pantry.items.v1", cfg.StorageKey)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 900*time.Millisecond, cfg.HighlightDuration)
	assert.False(t, cfg.SeedDefaults)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HIGHLIGHT_MS", "250")
	t.Setenv("SEED_DEFAULTS", "true")
	t.Setenv("LOCALE", "de")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.HighlightDuration)
	assert.True(t, cfg.SeedDefaults)
	assert.Equal(t, "de", cfg.Locale)
}

func TestLoadConfigInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("HIGHLIGHT_MS", "soon")
	t.Setenv("SEED_DEFAULTS", "maybe")

	cfg := LoadConfig()
	assert.Equal(t, 900*time.Millisecond, cfg.HighlightDuration)
	assert.False(t, cfg.SeedDefaults)
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("key", "value").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}
