package models

import "time"

// SiteAsset is a stored binary object (base64 encoded) with metadata.
// Assets are owned independently; content rows reference them via a
// nullable image id without a foreign key constraint, so deleting an
// asset that is still referenced leaves a dangling reference.
type SiteAsset struct {
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the original file name as uploaded.
	Name string `gorm:"size:255;not null" json:"name"`
	// Section is a logical grouping tag, e.g. "hero" or "about".
	Section string `gorm:"size:100;not null;index" json:"section"`
	// ContentType is the MIME type of the stored data.
	ContentType string `gorm:"size:100;not null" json:"contentType"`
	// Data is the base64 encoded file content. List responses strip it.
	Data      string    `gorm:"type:text;not null" json:"data"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the database table name for the SiteAsset model.
func (SiteAsset) TableName() string {
	return "site_assets"
}

// SiteAssetMeta is the data-free view of an asset used by list and
// upload responses to keep payloads small.
type SiteAssetMeta struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Section     string    `json:"section"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Meta returns the metadata view of the asset.
func (a *SiteAsset) Meta() SiteAssetMeta {
	return SiteAssetMeta{
		ID:          a.ID,
		Name:        a.Name,
		Section:     a.Section,
		ContentType: a.ContentType,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
