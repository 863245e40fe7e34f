package content

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

// TeamMemberUpdate carries the optional fields of a partial team member update.
type TeamMemberUpdate struct {
	Name        *string
	Role        *string
	Bio         *string
	SocialLinks *string
	ImageID     *uint64
	SortOrder   *int
}

func (u *TeamMemberUpdate) assignments() map[string]interface{} {
	out := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if u.Name != nil {
		out["name"] = *u.Name
	}
	if u.Role != nil {
		out["role"] = *u.Role
	}
	if u.Bio != nil {
		out["bio"] = *u.Bio
	}
	if u.SocialLinks != nil {
		out["social_links"] = *u.SocialLinks
	}
	if u.ImageID != nil {
		out["image_id"] = *u.ImageID
	}
	if u.SortOrder != nil {
		out["sort_order"] = *u.SortOrder
	}

	return out
}

// ListTeamMembers returns all team members in display order.
func ListTeamMembers(db *gorm.DB) ([]models.TeamMember, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var members []models.TeamMember
	result := db.Order(listOrderClause).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

// GetTeamMember retrieves one team member by id.
func GetTeamMember(db *gorm.DB, id uint64) (*models.TeamMember, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var member models.TeamMember
	result := db.First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &member, nil
}

// CreateTeamMember inserts a new team member, appending it after the
// current maximum rank when SortOrder is zero.
func CreateTeamMember(db *gorm.DB, member *models.TeamMember) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if member.SortOrder == 0 {
			next, err := nextSortOrder(tx, &models.TeamMember{})
			if err != nil {
				return err
			}

			member.SortOrder = next
		}

		return tx.Create(member).Error
	})
}

// UpdateTeamMember merges the provided fields into the row with the
// given id. Returns ErrNotFound when the id does not exist.
func UpdateTeamMember(db *gorm.DB, id uint64, upd TeamMemberUpdate) (*models.TeamMember, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	member, err := GetTeamMember(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(member).Updates(upd.assignments()).Error; err != nil {
		return nil, err
	}

	return GetTeamMember(db, id)
}

// DeleteTeamMember removes a team member by id; deleting a missing id
// is not an error.
func DeleteTeamMember(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.TeamMember{}, id).Error
}
