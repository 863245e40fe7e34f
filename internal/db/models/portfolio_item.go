package models

import "time"

// PortfolioItem is one entry of the ordered portfolio collection.
type PortfolioItem struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"size:100" json:"category,omitempty"`
	ImageID     *uint64   `json:"imageId,omitempty"`
	SortOrder   int       `gorm:"column:sort_order;not null;index" json:"order"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the PortfolioItem model.
func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
