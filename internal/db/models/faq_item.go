package models

import "time"

// FaqItem is one entry of the ordered FAQ collection.
type FaqItem struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	SortOrder int       `gorm:"column:sort_order;not null;index" json:"order"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the FaqItem model.
func (FaqItem) TableName() string {
	return "faq_items"
}
