// Package contact provides the HTTP handlers for contact form
// submissions.
package contact

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	contactcontroller "github.com/letterly/letterly/internal/db/controller/contact"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
	"github.com/letterly/letterly/internal/web/middleware/auth"
	"github.com/letterly/letterly/internal/web/session"
)

const (
	// Path is the base path of the contact routes.
	Path = handler.APIPath + "/contact"
)

// Service is the contact handler service.
type Service struct {
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.validator = validator.New()

	app.Post(Path, s.Submit)
	app.Get(Path, auth.RequireAdmin(sessions), s.List)

	return nil
}

type submitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Terms   bool   `json:"terms" validate:"eq=true"`
}

// Submit stores a contact form submission. The endpoint is public.
func (s *Service) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid submission", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid submission", handler.ValidationFieldErrors(err))
	}

	submission := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Terms:   req.Terms,
	}

	if err := contactcontroller.Create(s.db, &submission); err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")
		return handler.ServerError(c, "Failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Message sent successfully",
		"submissionId": submission.ID,
	})
}

// List returns all submissions, newest first. Admin only.
func (s *Service) List(c *fiber.Ctx) error {
	submissions, err := contactcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list contact submissions")
		return handler.ServerError(c, "Failed to fetch submissions")
	}

	if submissions == nil {
		submissions = []models.ContactSubmission{}
	}

	return c.JSON(submissions)
}
