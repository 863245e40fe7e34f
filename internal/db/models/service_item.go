package models

import "time"

// ServiceItem is one entry of the ordered services collection.
// SortOrder drives display sequence ascending; gaps and duplicates are
// allowed, ties break by id.
type ServiceItem struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"size:100" json:"icon,omitempty"`
	SortOrder   int       `gorm:"column:sort_order;not null;index" json:"order"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the ServiceItem model.
func (ServiceItem) TableName() string {
	return "service_items"
}
