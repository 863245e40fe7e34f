package content

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// TestimonialItemUpdate carries the optional fields of a partial testimonial update.
type TestimonialItemUpdate struct {
	Content   *string
	Author    *string
	Position  *string
	Company   *string
	ImageID   *uint64
	SortOrder *int
}

func (u *TestimonialItemUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Content != nil {
		out["content"] = *u.Content
	}
	if u.Author != nil {
		out["author"] = *u.Author
	}
	if u.Position != nil {
		out["position"] = *u.Position
	}
	if u.Company != nil {
		out["company"] = *u.Company
	}
	if u.ImageID != nil {
		out["image_id"] = *u.ImageID
	}
	if u.SortOrder != nil {
		out["sort_order"] = *u.SortOrder
	}

	return out
}

// ListTestimonialItems returns all testimonials in display order.
func ListTestimonialItems(db *gorm.DB) ([]models.TestimonialItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.TestimonialItem
	result := db.Order(listOrderClause).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// GetTestimonialItem retrieves one testimonial by id.
func GetTestimonialItem(db *gorm.DB, id uint64) (*models.TestimonialItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item models.TestimonialItem
	result := db.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &item, nil
}

// CreateTestimonialItem inserts a new testimonial, appending it after
// the current maximum rank when SortOrder is zero.
func CreateTestimonialItem(db *gorm.DB, item *models.TestimonialItem) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if item.SortOrder == 0 {
			next, err := nextSortOrder(tx, &models.TestimonialItem{})
			if err != nil {
				return err
			}

			item.SortOrder = next
		}

		return tx.Create(item).Error
	})
}

// UpdateTestimonialItem merges the provided fields into the row with the
// given id. Returns ErrNotFound when the id does not exist.
func UpdateTestimonialItem(db *gorm.DB, id uint64, upd TestimonialItemUpdate) (*models.TestimonialItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item, err := GetTestimonialItem(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(item).Updates(upd.assignments()).Error; err != nil {
		return nil, err
	}

	return GetTestimonialItem(db, id)
}

// DeleteTestimonialItem removes a testimonial by id; deleting a missing
// id is not an error.
func DeleteTestimonialItem(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.TestimonialItem{}, id).Error
}
