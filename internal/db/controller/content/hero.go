package content

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/letterly/letterly/internal/db/models"
)

// DefaultHeroTitle is used when the first upsert does not carry a title.
const DefaultHeroTitle = "Welcome to Our Company"

// HeroUpdate carries the optional fields of a hero upsert. Nil fields
// are left untouched on an existing row.
type HeroUpdate struct {
	Title       *string
	Subtitle    *string
	Description *string
	ButtonText  *string
	ButtonLink  *string
	ImageID     *uint64
}

func (u *HeroUpdate) assignments() map[string]interface{} {
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
	if u.ButtonText != nil {
		out["button_text"] = *u.ButtonText
	}
	if u.ButtonLink != nil {
		out["button_link"] = *u.ButtonLink
	}
	if u.ImageID != nil {
		out["image_id"] = *u.ImageID
	}

	return out
}

// GetHero returns the hero singleton, or nil without error when it has
// never been written.
func GetHero(db *gorm.DB) (*models.HeroContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row models.HeroContent
	result := db.Where("slot = ?", models.SingletonSlot).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &row, nil
}

// UpdateHero upserts the hero singleton. An absent row is inserted with
// documented defaults for omitted fields; an existing row has only the
// provided fields merged in. The slot unique index keeps this to one row
// even when two upserts race.
func UpdateHero(db *gorm.DB, upd HeroUpdate) (*models.HeroContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	row := models.HeroContent{
		Slot:  models.SingletonSlot,
		Title: DefaultHeroTitle,
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
	if upd.ButtonText != nil {
		row.ButtonText = *upd.ButtonText
	}
	if upd.ButtonLink != nil {
		row.ButtonLink = *upd.ButtonLink
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

	return GetHero(db)
}
