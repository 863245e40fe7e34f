package models

import "time"

// ProductItem is one entry of the ordered products collection.
type ProductItem struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Price       string `gorm:"size:100" json:"price,omitempty"`
	// Features is a JSON encoded list of feature strings.
	Features    string    `gorm:"type:text" json:"features,omitempty"`
	BgColor     string    `gorm:"size:20;default:'#ffffff'" json:"bgColor,omitempty"`
	ButtonColor string    `gorm:"size:20;default:'#000000'" json:"buttonColor,omitempty"`
	ImageID     *uint64   `json:"imageId,omitempty"`
	SortOrder   int       `gorm:"column:sort_order;not null;index" json:"order"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the ProductItem model.
func (ProductItem) TableName() string {
	return "product_items"
}
