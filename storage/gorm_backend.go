package storage

import (
	"errors"

	"pantry-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend хранит записи в таблице kv_entries через GORM
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend создает хранилище поверх подключения к базе данных
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Get возвращает значение по ключу
func (b *GormBackend) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	err := b.db.Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set сохраняет значение, перезаписывая существующую запись
func (b *GormBackend) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
