// Package settings provides the HTTP handlers for the site settings
// key-value store.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	settingcontroller "github.com/letterly/letterly/internal/db/controller/setting"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
	"github.com/letterly/letterly/internal/web/middleware/auth"
	"github.com/letterly/letterly/internal/web/session"
)

const (
	// Path is the base path of the settings routes.
	Path = handler.APIPath + "/settings"
)

// Service is the settings handler service.
type Service struct {
	db *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Get(Path, s.List)
	app.Post(Path, auth.RequireAdmin(sessions), s.Set)

	return nil
}

type setRequest struct {
	Key string `json:"key"`
	// Value is a pointer so a missing field can be told apart from an
	// explicit empty string, which is a valid setting value.
	Value *string `json:"value"`
	Type  string  `json:"type"`
}

// List returns every setting. The site front-end reads these without a
// session, so the endpoint is public.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := settingcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list settings")
		return handler.ServerError(c, "Failed to fetch settings")
	}

	if settings == nil {
		settings = []models.SiteSetting{}
	}

	return c.JSON(settings)
}

// Set creates or overwrites a setting by key. Admin only.
func (s *Service) Set(c *fiber.Ctx) error {
	var req setRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Key and value are required", nil)
	}

	if req.Key == "" || req.Value == nil {
		return handler.BadRequest(c, "Key and value are required", nil)
	}

	setting, err := settingcontroller.Set(s.db, req.Key, *req.Value, req.Type)
	if err != nil {
		log.Error().Err(err).Msg("failed to set setting")
		return handler.ServerError(c, "Failed to save setting")
	}

	return c.JSON(setting)
}
