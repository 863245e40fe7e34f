package content

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// FaqItemUpdate carries the optional fields of a partial FAQ update.
type FaqItemUpdate struct {
	Question  *string
	Answer    *string
	SortOrder *int
}

func (u *FaqItemUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Question != nil {
		out["question"] = *u.Question
	}
	if u.Answer != nil {
		out["answer"] = *u.Answer
	}
	if u.SortOrder != nil {
		out["sort_order"] = *u.SortOrder
	}

	return out
}

// ListFaqItems returns all FAQ items in display order.
func ListFaqItems(db *gorm.DB) ([]models.FaqItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.FaqItem
	result := db.Order(listOrderClause).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// GetFaqItem retrieves one FAQ item by id.
func GetFaqItem(db *gorm.DB, id uint64) (*models.FaqItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item models.FaqItem
	result := db.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &item, nil
}

// CreateFaqItem inserts a new FAQ item, appending it after the current
// maximum rank when SortOrder is zero.
func CreateFaqItem(db *gorm.DB, item *models.FaqItem) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if item.SortOrder == 0 {
			next, err := nextSortOrder(tx, &models.FaqItem{})
			if err != nil {
				return err
			}

			item.SortOrder = next
		}

		return tx.Create(item).Error
	})
}

// UpdateFaqItem merges the provided fields into the row with the given
// id. Returns ErrNotFound when the id does not exist.
func UpdateFaqItem(db *gorm.DB, id uint64, upd FaqItemUpdate) (*models.FaqItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item, err := GetFaqItem(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(item).Updates(upd.assignments()).Error; err != nil {
		return nil, err
	}

	return GetFaqItem(db, id)
}

// DeleteFaqItem removes a FAQ item by id; deleting a missing id is not
// an error.
func DeleteFaqItem(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.FaqItem{}, id).Error
}
