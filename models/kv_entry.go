package models

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// KVEntry представляет одну запись ключ-значение постоянного хранилища
type KVEntry struct {
	Key       string    `json:"key" gorm:"column:entry_key;primaryKey;size:255"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName задает имя таблицы для записей хранилища
func (KVEntry) TableName() string {
	return "kv_entries"
}

// BeforeSave хук для обновления времени изменения
func (e *KVEntry) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}

// InitDB инициализирует подключение к базе данных
func InitDB(databaseURL, sqlitePath string) (*gorm.DB, error) {
	if databaseURL != "" {
		// Используем PostgreSQL для продакшена
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	// Используем SQLite для разработки
	if sqlitePath == "" {
		sqlitePath = "pantry.db"
	}
	return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
}

// Migrate создает необходимые таблицы
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&KVEntry{})
}
