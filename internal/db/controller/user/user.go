// Package user provides persistence operations for user accounts.
package user

import (
	"errors"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/db/models"
)

const (
	usernameQueryPattern = "username = ?"
)

// dummyHash is a syntactically valid Argon2id hash compared against when
// the username does not exist, so both failure paths cost a hash
// comparison and stay indistinguishable to the caller.
const dummyHash = "$argon2id$v=19$m=65536,t=1,p=2$" +
	"AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameEmpty is returned when attempting to create or look up a user with an empty username.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike. Callers cannot tell the two cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a user by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	result := db.First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// GetByUsername retrieves a user by its unique username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if username == "" {
		return nil, ErrUsernameEmpty
	}

	var u models.User
	result := db.Where(usernameQueryPattern, username).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// GetAll retrieves all users.
func GetAll(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	result := db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Count returns the number of registered users.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Create inserts a new user. The plaintext password on the passed struct
// is replaced by its Argon2id hash before the row is written.
func Create(db *gorm.DB, u *models.User) error {
	if db == nil {
		return ErrDBNil
	}
	if u.Username == "" {
		return ErrUsernameEmpty
	}

	u.Password = models.HashPassword(u.Password)

	if u.Role == "" {
		u.Role = models.RoleUser
	}

	result := db.Create(u)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// ValidateCredentials looks up the user by username and verifies the
// supplied plaintext password against the stored hash. It returns
// ErrInvalidCredentials both when the username does not exist and when
// the password is wrong.
func ValidateCredentials(db *gorm.DB, username, password string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	u, err := GetByUsername(db, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUsernameEmpty) {
			// burn a comparison so the miss costs the same as a mismatch
			_, _ = argon2id.ComparePasswordAndHash(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
