package models

import "time"

// TeamMember is one entry of the ordered team collection.
type TeamMember struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Role string `gorm:"size:255;not null" json:"role"`
	Bio  string `gorm:"type:text" json:"bio,omitempty"`
	// SocialLinks is a JSON encoded object of platform to URL.
	SocialLinks string    `gorm:"type:text" json:"socialLinks,omitempty"`
	ImageID     *uint64   `json:"imageId,omitempty"`
	SortOrder   int       `gorm:"column:sort_order;not null;index" json:"order"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the TeamMember model.
func (TeamMember) TableName() string {
	return "team_members"
}
