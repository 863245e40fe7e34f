// Package session implements the server-side session store. Sessions
// are keyed by a random cookie value and hold only the signed-in user's
// identity, never the password hash. The backing storage is pluggable
// (shared database table in production, in-memory in tests and for the
// sqlite engine) and the store is injected into handlers explicitly, so
// the core stays testable without an HTTP server.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// ErrSessionNotFound is returned when no session exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

// Identity is the session payload: who is signed in and with which role.
type Identity struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// Store reads and writes session identities on a storage backend.
type Store struct {
	storage fiber.Storage
	expiry  time.Duration
}

// New creates a session store on the given storage backend. Sessions
// expire after the given duration; the backend enforces the expiry.
func New(st fiber.Storage, expiry time.Duration) *Store {
	if st == nil {
		panic("storage is nil")
	}

	return &Store{storage: st, expiry: expiry}
}

// Get reads the identity for the given session id.
func (s *Store) Get(sessionID string) (Identity, error) {
	var identity Identity

	if sessionID == "" {
		return identity, ErrSessionNotFound
	}

	byteData, err := s.storage.Get(sessionID)
	if err != nil {
		return identity, err
	}

	// gofiber storage backends report a missing or expired key as nil data
	if len(byteData) == 0 {
		return identity, ErrSessionNotFound
	}

	if err := json.Unmarshal(byteData, &identity); err != nil {
		return identity, err
	}

	if identity.ID == 0 {
		return identity, ErrSessionNotFound
	}

	return identity, nil
}

// Set writes the identity for the given session id.
func (s *Store) Set(sessionID string, identity Identity) error {
	out, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	return s.storage.Set(sessionID, out, s.expiry)
}

// Destroy removes the session for the given id. Destroying an absent
// session is not an error.
func (s *Store) Destroy(sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return s.storage.Delete(sessionID)
}

// Expiry returns the configured session lifetime.
func (s *Store) Expiry() time.Duration {
	return s.expiry
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
