// Package auth provides the HTTP handlers for registration, login,
// logout and the session check.
package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	usercontroller "github.com/letterly/letterly/internal/db/controller/user"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
	middleware "github.com/letterly/letterly/internal/web/middleware/auth"
	"github.com/letterly/letterly/internal/web/session"
)

const (
	// Path is the base path of the auth routes.
	Path = handler.APIPath + "/auth"
)

// Service is the auth handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	sessions  *session.Store
	validator *validator.Validate
}

// Handler is the auth handler.
var Handler = Service{}

// Init initializes the auth handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.sessions = sessions
	s.validator = validator.New()

	authenticated := middleware.RequireAuthenticated(sessions)

	app.Route(Path, func(router fiber.Router) {
		router.Post("/register", s.Register)
		router.Post("/login", s.Login)
		router.Post("/logout", authenticated, s.Logout)
		router.Get("/check", authenticated, s.Check)
	})

	return nil
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"fullName"`
	// Role is accepted for wire compatibility but always overridden:
	// the one user this endpoint can ever create is an admin.
	Role string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles first-run admin creation. The endpoint is closed as
// soon as any user exists.
func (s *Service) Register(c *fiber.Ctx) error {
	count, err := usercontroller.Count(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")
		return handler.ServerError(c, "Failed to register user")
	}

	if count > 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Registration is closed",
		})
	}

	var req registerRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid user data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid user data", handler.ValidationFieldErrors(err))
	}

	u := models.User{
		Username: req.Username,
		Password: req.Password,
		Role:     models.RoleAdmin, // first user is always admin
		Email:    req.Email,
		FullName: req.FullName,
	}

	if err := usercontroller.Create(s.db, &u); err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return handler.ServerError(c, "Failed to register user")
	}

	if err := s.establishSession(c, &u); err != nil {
		log.Error().Err(err).Msg("failed to establish session after registration")
		return handler.ServerError(c, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    u,
	})
}

// Login validates credentials and establishes a session.
func (s *Service) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Username and password are required", nil)
	}

	if req.Username == "" || req.Password == "" {
		return handler.BadRequest(c, "Username and password are required", nil)
	}

	u, err := usercontroller.ValidateCredentials(s.db, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usercontroller.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}

		log.Error().Err(err).Msg("failed to validate credentials")
		return handler.ServerError(c, "Failed to login")
	}

	if err := s.establishSession(c, u); err != nil {
		log.Error().Err(err).Msg("failed to establish session after login")
		return handler.ServerError(c, "Failed to login")
	}

	return c.JSON(fiber.Map{
		"message": "Logged in successfully",
		"user":    u,
	})
}

// Logout destroys the session and clears the cookie. The route guard
// guarantees a session cookie is present.
func (s *Service) Logout(c *fiber.Ctx) error {
	if err := s.sessions.Destroy(c.Cookies(session.CookieName)); err != nil {
		log.Error().Err(err).Msg("failed to destroy session")
		return handler.ServerError(c, "Failed to logout")
	}

	s.clearSessionCookie(c)

	identity, _ := middleware.Identity(c)
	log.Info().Str("username", identity.Username).Msg("user signed out")

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Check returns the signed-in user, fetched fresh from the database so
// the response reflects the current account, not the session snapshot.
func (s *Service) Check(c *fiber.Ctx) error {
	identity, _ := middleware.Identity(c)

	u, err := usercontroller.GetByID(s.db, identity.ID)
	if err != nil {
		if errors.Is(err, usercontroller.ErrUserNotFound) {
			// the session outlived its account
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated",
			})
		}

		log.Error().Err(err).Msg("failed to load user for session check")
		return handler.ServerError(c, "Failed to check session")
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          u,
	})
}

func (s *Service) establishSession(c *fiber.Ctx, u *models.User) error {
	sessionID, err := session.GenerateSessionID()
	if err != nil {
		return err
	}

	identity := session.Identity{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}

	if err := s.sessions.Set(sessionID, identity); err != nil {
		return err
	}

	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.sessions.Expiry().Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookie.Secure = false
	}

	c.Cookie(cookie)

	return nil
}

func (s *Service) clearSessionCookie(c *fiber.Ctx) {
	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookie.Secure = false
	}

	c.Cookie(cookie)
}
