package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config представляет настройки приложения из переменных окружения
type Config struct {
	Port              string
	DatabaseURL       string
	SQLitePath        string
	CORSOrigins       string
	StorageKey        string
	Locale            string
	HighlightDuration time.Duration
	LogLevel          string
	SeedDefaults      bool
}

// LoadConfig читает настройки из окружения, подставляя значения по умолчанию
func LoadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        getEnv("SQLITE_PATH", "pantry.db"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		StorageKey:        getEnv("STORAGE_KEY", "pantry.items.v1"),
		Locale:            getEnv("LOCALE", "en"),
		HighlightDuration: time.Duration(getEnvInt("HIGHLIGHT_MS", 900)) * time.Millisecond,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SeedDefaults:      getEnvBool("SEED_DEFAULTS", false),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
