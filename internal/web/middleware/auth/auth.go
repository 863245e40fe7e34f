// Package auth provides the session guards for mutating and sensitive routes.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/letterly/letterly/internal/web/session"
)

// LocalsIdentity is the fiber.Locals key the guards store the resolved
// session identity under.
const LocalsIdentity = "identity"

// unauthorized rejects the request. Unauthenticated and non-admin
// requests get the same 401 body; the API deliberately does not expose
// a separate 403 tier.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthorized",
	})
}

func identityFromCookie(c *fiber.Ctx, store *session.Store) (session.Identity, error) {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return session.Identity{}, session.ErrSessionNotFound
	}

	return store.Get(sessionID)
}

// RequireAuthenticated creates fiber middleware that requires a valid
// session carrying any user identity.
func RequireAuthenticated(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := identityFromCookie(c, store)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				log.Error().Err(err).Msg("failed to read session")
			}

			return unauthorized(c)
		}

		c.Locals(LocalsIdentity, identity)

		return c.Next()
	}
}

// RequireAdmin creates fiber middleware that requires a valid session
// whose user carries the admin role.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := identityFromCookie(c, store)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				log.Error().Err(err).Msg("failed to read session")
			}

			return unauthorized(c)
		}

		if !identity.IsAdmin() {
			log.Warn().Str("username", identity.Username).Msg("non-admin session on admin route")

			return unauthorized(c)
		}

		c.Locals(LocalsIdentity, identity)

		return c.Next()
	}
}

// Identity returns the identity a guard stored on the request context.
// The second return is false when no guard ran on this route.
func Identity(c *fiber.Ctx) (session.Identity, bool) {
	identity, ok := c.Locals(LocalsIdentity).(session.Identity)

	return identity, ok
}
