// Package asset provides persistence operations for uploaded site assets.
package asset

import (
	"errors"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

const (
	sectionQueryPattern = "section = ?"
)

var (
	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new asset row and fills in its generated id.
func Create(db *gorm.DB, a *models.SiteAsset) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(a)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Get retrieves a full asset row, including its base64 data.
func Get(db *gorm.DB, id uint64) (*models.SiteAsset, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var a models.SiteAsset
	result := db.First(&a, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, result.Error
	}

	return &a, nil
}

// GetBySection retrieves all assets carrying the given section tag.
func GetBySection(db *gorm.DB, section string) ([]models.SiteAsset, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var assets []models.SiteAsset
	result := db.Where(sectionQueryPattern, section).Order("id ASC").Find(&assets)
	if result.Error != nil {
		return nil, result.Error
	}

	return assets, nil
}

// Delete removes an asset by id. A missing id is reported as
// ErrAssetNotFound; callers that want idempotent deletes may ignore it.
// Content rows referencing the asset keep their image id and dangle.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.SiteAsset{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}

	return nil
}
