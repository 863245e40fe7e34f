// Package setting provides CRUD operations for the site settings key-value store.
package setting

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/letterly/letterly/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to read or write a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.SiteSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.SiteSetting
	result := db.Where(keyQueryPattern, key).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// GetAll retrieves all settings from the database.
func GetAll(db *gorm.DB) ([]models.SiteSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.SiteSetting
	result := db.Order("key ASC").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set creates or updates a setting by key. The upsert is a single
// INSERT ... ON CONFLICT on the unique key column, so concurrent Set
// calls for the same key cannot produce two rows.
func Set(db *gorm.DB, key, value, settingType string) (*models.SiteSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	if settingType == "" {
		settingType = models.SettingTypeText
	}

	s := models.SiteSetting{
		Key:   key,
		Value: value,
		Type:  settingType,
	}

	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"type":       settingType,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&s)
	if result.Error != nil {
		return nil, result.Error
	}

	// Re-read so the caller always sees the stored row, including the id
	// of a pre-existing key.
	return Get(db, key)
}

// Delete removes a setting by key. Deleting an absent key is not an error.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Where(keyQueryPattern, key).Delete(&models.SiteSetting{})
	if result.Error != nil {
		return result.Error
	}

	return nil
}
