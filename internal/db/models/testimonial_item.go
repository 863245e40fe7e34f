package models

import "time"

// TestimonialItem is one entry of the ordered testimonials collection.
type TestimonialItem struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Position  string    `gorm:"size:255" json:"position,omitempty"`
	Company   string    `gorm:"size:255" json:"company,omitempty"`
	ImageID   *uint64   `json:"imageId,omitempty"`
	SortOrder int       `gorm:"column:sort_order;not null;index" json:"order"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the TestimonialItem model.
func (TestimonialItem) TableName() string {
	return "testimonial_items"
}
