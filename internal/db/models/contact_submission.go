package models

import "time"

// ContactSubmission is one submitted contact form. Rows are immutable
// after creation and readable by admins only.
type ContactSubmission struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	// Terms records that the sender accepted the terms. Validation
	// rejects submissions where this is false.
	Terms     bool      `gorm:"not null" json:"terms"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the database table name for the ContactSubmission model.
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
