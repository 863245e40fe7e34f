package content

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// ServiceItemUpdate carries the optional fields of a partial service update.
type ServiceItemUpdate struct {
	Title       *string
	Description *string
	Icon        *string
	SortOrder   *int
}

func (u *ServiceItemUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Title != nil {
		out["title"] = *u.Title
	}
	if u.Description != nil {
		out["description"] = *u.Description
	}
	if u.Icon != nil {
		out["icon"] = *u.Icon
	}
	if u.SortOrder != nil {
		out["sort_order"] = *u.SortOrder
	}

	return out
}

// ListServiceItems returns all service items in display order.
func ListServiceItems(db *gorm.DB) ([]models.ServiceItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.ServiceItem
	result := db.Order(listOrderClause).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// GetServiceItem retrieves one service item by id.
func GetServiceItem(db *gorm.DB, id uint64) (*models.ServiceItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item models.ServiceItem
	result := db.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &item, nil
}

// CreateServiceItem inserts a new service item. When the caller leaves
// SortOrder at zero the item is appended after the current maximum; rank
// assignment and insert share one transaction.
func CreateServiceItem(db *gorm.DB, item *models.ServiceItem) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if item.SortOrder == 0 {
			next, err := nextSortOrder(tx, &models.ServiceItem{})
			if err != nil {
				return err
			}

			item.SortOrder = next
		}

		return tx.Create(item).Error
	})
}

// UpdateServiceItem merges the provided fields into the row with the
// given id and refreshes its timestamp. Returns ErrNotFound when the id
// does not exist.
func UpdateServiceItem(db *gorm.DB, id uint64, upd ServiceItemUpdate) (*models.ServiceItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item, err := GetServiceItem(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(item).Updates(upd.assignments()).Error; err != nil {
		return nil, err
	}

	return GetServiceItem(db, id)
}

// DeleteServiceItem removes a service item by id; deleting a missing id
// is not an error.
func DeleteServiceItem(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.ServiceItem{}, id).Error
}
