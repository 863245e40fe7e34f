package content

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// ProductItemUpdate carries the optional fields of a partial product update.
type ProductItemUpdate struct {
	Name        *string
	Description *string
	Price       *string
	Features    *string
	BgColor     *string
	ButtonColor *string
	ImageID     *uint64
	SortOrder   *int
}

func (u *ProductItemUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Name != nil {
		out["name"] = *u.Name
	}
	if u.Description != nil {
		out["description"] = *u.Description
	}
	if u.Price != nil {
		out["price"] = *u.Price
	}
	if u.Features != nil {
		out["features"] = *u.Features
	}
	if u.BgColor != nil {
		out["bg_color"] = *u.BgColor
	}
	if u.ButtonColor != nil {
		out["button_color"] = *u.ButtonColor
	}
	if u.ImageID != nil {
		out["image_id"] = *u.ImageID
	}
	if u.SortOrder != nil {
		out["sort_order"] = *u.SortOrder
	}

	return out
}

// ListProductItems returns all product items in display order.
func ListProductItems(db *gorm.DB) ([]models.ProductItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.ProductItem
	result := db.Order(listOrderClause).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// GetProductItem retrieves one product item by id.
func GetProductItem(db *gorm.DB, id uint64) (*models.ProductItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item models.ProductItem
	result := db.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &item, nil
}

// CreateProductItem inserts a new product item, appending it after the
// current maximum rank when SortOrder is zero.
func CreateProductItem(db *gorm.DB, item *models.ProductItem) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if item.SortOrder == 0 {
			next, err := nextSortOrder(tx, &models.ProductItem{})
			if err != nil {
				return err
			}

			item.SortOrder = next
		}

		return tx.Create(item).Error
	})
}

// UpdateProductItem merges the provided fields into the row with the
// given id. Returns ErrNotFound when the id does not exist.
func UpdateProductItem(db *gorm.DB, id uint64, upd ProductItemUpdate) (*models.ProductItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item, err := GetProductItem(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(item).Updates(upd.assignments()).Error; err != nil {
		return nil, err
	}

	return GetProductItem(db, id)
}

// DeleteProductItem removes a product item by id; deleting a missing id
// is not an error.
func DeleteProductItem(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.ProductItem{}, id).Error
}
