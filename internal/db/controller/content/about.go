package content

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/letterly/letterly/internal/db/models"
)

// DefaultAboutTitle is used when the first upsert does not carry a title.
const DefaultAboutTitle = "About Our Company"

// AboutUpdate carries the optional fields of an about upsert.
type AboutUpdate struct {
	Title       *string
	Subtitle    *string
	Description *string
	Content     *string
	ImageID     *uint64
}

func (u *AboutUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Title != nil {
		out["title"] = *u.Title
	}
	if u.Subtitle != nil {
		out["subtitle"] = *u.Subtitle
	}
	if u.Description != nil {
		out["description"] = *u.Description
	}
	if u.Content != nil {
		out["content"] = *u.Content
	}
	if u.ImageID != nil {
		out["image_id"] = *u.ImageID
	}

	return out
}

// GetAbout returns the about singleton, or nil without error when it has
// never been written.
func GetAbout(db *gorm.DB) (*models.AboutContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row models.AboutContent
	result := db.Where("slot = ?", models.SingletonSlot).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &row, nil
}

// UpdateAbout upserts the about singleton, same contract as UpdateHero.
func UpdateAbout(db *gorm.DB, upd AboutUpdate) (*models.AboutContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	row := models.AboutContent{
		Slot:  models.SingletonSlot,
		Title: DefaultAboutTitle,
	}

	if upd.Title != nil {
		row.Title = *upd.Title
	}
	if upd.Subtitle != nil {
		row.Subtitle = *upd.Subtitle
	}
	if upd.Description != nil {
		row.Description = *upd.Description
	}
	if upd.Content != nil {
		row.Content = *upd.Content
	}
	if upd.ImageID != nil {
		row.ImageID = upd.ImageID
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.Assignments(upd.assignments()),
	}).Create(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetAbout(db)
}
