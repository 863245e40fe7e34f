package models

import "time"

// AboutContent is the singleton about section.
type AboutContent struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Slot        int       `gorm:"uniqueIndex;not null" json:"-"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Subtitle    string    `gorm:"size:255" json:"subtitle,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Content     string    `gorm:"type:text" json:"content,omitempty"`
	ImageID     *uint64   `json:"imageId,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the AboutContent model.
func (AboutContent) TableName() string {
	return "about_content"
}
