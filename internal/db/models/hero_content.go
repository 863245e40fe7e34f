package models

import "time"

// SingletonSlot is the fixed slot value for singleton content rows.
// The unique index on the slot column is what guarantees at most one
// row per singleton table, even under concurrent upserts.
const SingletonSlot = 1

// HeroContent is the singleton hero section of the landing page.
type HeroContent struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Slot        int       `gorm:"uniqueIndex;not null" json:"-"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Subtitle    string    `gorm:"size:255" json:"subtitle,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ButtonText  string    `gorm:"size:100" json:"buttonText,omitempty"`
	ButtonLink  string    `gorm:"size:255" json:"buttonLink,omitempty"`
	ImageID     *uint64   `json:"imageId,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the HeroContent model.
func (HeroContent) TableName() string {
	return "hero_content"
}
