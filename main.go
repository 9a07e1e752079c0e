package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pantry-backend/models"
	"pantry-backend/services"
	"pantry-backend/storage"
	"pantry-backend/utils"

	"github.com/rs/zerolog"
)

func main() {
	cfg := utils.LoadConfig()
	logger := utils.NewLogger(cfg.LogLevel, os.Stdout)

	// Инициализация базы данных
	db, err := models.InitDB(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Автомиграция
	if err := models.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Инициализация WebSocket хаба
	hub := services.NewHub(logger)
	go hub.Run(ctx)

	highlighter := services.NewHighlighter(cfg.HighlightDuration, hub, logger)
	defer highlighter.Stop()

	codec := storage.NewCodec(storage.NewGormBackend(db), cfg.StorageKey)
	store := services.NewStore(codec,
		services.WithHighlighter(highlighter),
		services.WithPublisher(hub),
		services.WithLogger(logger),
		services.WithLocale(services.ParseLocale(cfg.Locale)),
	)

	// Инициализация базового списка товаров
	if cfg.SeedDefaults {
		initDefaultInventory(store, logger)
	}

	app := newApp(store, hub, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	// Запуск сервера
	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// initDefaultInventory добавляет базовые товары, если список пуст
func initDefaultInventory(store *services.Store, logger zerolog.Logger) {
	defaultInventory := []struct {
		Name string
		Note string
	}{
		{Name: "Toilet Paper"},
		{Name: "Dish Soap"},
		{Name: "Laundry Detergent"},
		{Name: "Trash Bags"},
		{Name: "Paper Towels"},
		{Name: "Rice"},
		{Name: "Pasta"},
		{Name: "Olive Oil"},
		{Name: "Salt"},
		{Name: "Coffee"},
		{Name: "Toothpaste"},
		{Name: "Batteries", Note: "AA"},
	}

	// Проверяем, есть ли уже товары
	if count := len(store.Items()); count > 0 {
		logger.Info().Int("items", count).Msg("default inventory skipped, items already exist")
		return
	}

	logger.Info().Msg("seeding default inventory")
	for _, item := range defaultInventory {
		if _, err := store.Add(item.Name, item.Note); err != nil {
			logger.Warn().Err(err).Str("name", item.Name).Msg("failed to seed item")
		}
	}
	logger.Info().Int("items", len(store.Items())).Msg("default inventory seeded")
}
