package main

import (
	"errors"
	"os"

	"pantry-backend/models"
	"pantry-backend/services"
	"pantry-backend/storage"
	"pantry-backend/utils"

	"github.com/goccy/go-json"
)

type fixtureItem struct {
	Name   string `json:"name"`
	Note   string `json:"note"`
	Status string `json:"status"`
}

func main() {
	cfg := utils.LoadConfig()
	logger := utils.NewLogger(cfg.LogLevel, os.Stderr)

	// Путь к файлу с фикстурами
	path := "fixtures/items.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to read fixtures")
	}

	var fixtures []fixtureItem
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to parse fixtures")
	}

	// Подключаемся к БД
	db, err := models.InitDB(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := models.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	store := services.NewStore(
		storage.NewCodec(storage.NewGormBackend(db), cfg.StorageKey),
		services.WithLogger(logger),
	)

	imported, skipped := 0, 0
	for _, fixture := range fixtures {
		id, err := store.Add(fixture.Name, fixture.Note)
		if err != nil {
			var persistErr *storage.PersistenceError
			if errors.As(err, &persistErr) {
				logger.Fatal().Err(err).Msg("failed to save inventory")
			}
			logger.Warn().Err(err).Str("name", fixture.Name).Msg("fixture skipped")
			skipped++
			continue
		}

		if status, ok := models.ParseStatus(fixture.Status); ok && status != models.StatusEnough {
			if _, _, err := store.SetStatus(id, status); err != nil {
				logger.Fatal().Err(err).Msg("failed to save inventory")
			}
		}
		imported++
	}

	logger.Info().Int("imported", imported).Int("skipped", skipped).Msg("fixtures applied")
}
