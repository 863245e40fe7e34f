// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User roles. The system knows exactly two tiers; the first registered
// user is always an admin and the registration endpoint closes after it.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account that can sign in to the admin panel.
// Accounts are created once during first-run setup and are not otherwise
// mutated by this system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Password is the Argon2id hashed password. Never serialized.
	Password string `gorm:"size:255;not null" json:"-"`
	// Role is either "user" or "admin".
	Role string `gorm:"size:20;not null;default:'user'" json:"role"`
	// Email is the user's email address.
	Email string `gorm:"size:255" json:"email,omitempty"`
	// FullName is the user's display name.
	FullName string `gorm:"size:255" json:"fullName,omitempty"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating local user passwords.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
