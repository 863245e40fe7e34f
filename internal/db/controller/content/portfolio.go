package content

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// PortfolioItemUpdate carries the optional fields of a partial portfolio update.
type PortfolioItemUpdate struct {
	Title       *string
	Description *string
	Category    *string
	ImageID     *uint64
	SortOrder   *int
}

func (u *PortfolioItemUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Title != nil {
		out["title"] = *u.Title
	}
	if u.Description != nil {
		out["description"] = *u.Description
	}
	if u.Category != nil {
		out["category"] = *u.Category
	}
	if u.ImageID != nil {
		out["image_id"] = *u.ImageID
	}
	if u.SortOrder != nil {
		out["sort_order"] = *u.SortOrder
	}

	return out
}

// ListPortfolioItems returns all portfolio items in display order.
func ListPortfolioItems(db *gorm.DB) ([]models.PortfolioItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.PortfolioItem
	result := db.Order(listOrderClause).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// GetPortfolioItem retrieves one portfolio item by id.
func GetPortfolioItem(db *gorm.DB, id uint64) (*models.PortfolioItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item models.PortfolioItem
	result := db.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &item, nil
}

// CreatePortfolioItem inserts a new portfolio item, appending it after
// the current maximum rank when SortOrder is zero.
func CreatePortfolioItem(db *gorm.DB, item *models.PortfolioItem) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if item.SortOrder == 0 {
			next, err := nextSortOrder(tx, &models.PortfolioItem{})
			if err != nil {
				return err
			}

			item.SortOrder = next
		}

		return tx.Create(item).Error
	})
}

// UpdatePortfolioItem merges the provided fields into the row with the
// given id. Returns ErrNotFound when the id does not exist.
func UpdatePortfolioItem(db *gorm.DB, id uint64, upd PortfolioItemUpdate) (*models.PortfolioItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item, err := GetPortfolioItem(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(item).Updates(upd.assignments()).Error; err != nil {
		return nil, err
	}

	return GetPortfolioItem(db, id)
}

// DeletePortfolioItem removes a portfolio item by id; deleting a missing
// id is not an error.
func DeletePortfolioItem(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.PortfolioItem{}, id).Error
}
