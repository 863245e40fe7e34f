package models

import "time"

// Site setting value type tags. Advisory only, never enforced.
const (
	SettingTypeText    = "text"
	SettingTypeNumber  = "number"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// SiteSetting is a key-unique string setting with an advisory type tag.
// Setting a key upserts: it creates the row if absent and otherwise
// overwrites value, type and timestamp.
type SiteSetting struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;size:255;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
	// Type is one of text, number, boolean or json.
	Type      string    `gorm:"size:20;not null;default:'text'" json:"type"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the SiteSetting model.
func (SiteSetting) TableName() string {
	return "site_settings"
}
