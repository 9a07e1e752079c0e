package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pantry-backend/models"
	"pantry-backend/services"
	"pantry-backend/storage"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB создает тестовую базу данных в памяти
func setupTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	// Каждое новое соединение получает свою пустую базу
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	models.Migrate(db)
	return db
}

// setupTestApp создает приложение поверх хранилища в базе данных
func setupTestApp(db *gorm.DB) (*fiber.App, *services.Store) {
	store := services.NewStore(storage.NewCodec(storage.NewGormBackend(db), storage.DefaultKey))
	return newApp(store, nil, "*"), store
}

// doJSON выполняет запрос и разбирает JSON ответ
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]interface{}{}
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "" && strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp.StatusCode, result
}

// createTestItem добавляет товар через API и возвращает его ID
func createTestItem(t *testing.T, app *fiber.App, name string) string {
	status, body := doJSON(t, app, http.MethodPost, "/api/items", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, status)
	return body["id"].(string)
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
