// Package contact provides persistence operations for contact form submissions.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("contact submission not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new contact submission and fills in its generated id.
func Create(db *gorm.DB, submission *models.ContactSubmission) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(submission)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// GetAll retrieves all submissions, newest first.
func GetAll(db *gorm.DB) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var submissions []models.ContactSubmission
	result := db.Order("created_at DESC, id DESC").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

// GetByID retrieves a single submission by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var submission models.ContactSubmission
	result := db.First(&submission, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, result.Error
	}

	return &submission, nil
}
