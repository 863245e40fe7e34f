// Package assets provides the HTTP handlers for uploaded site assets.
package assets

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	assetcontroller "github.com/letterly/letterly/internal/db/controller/asset"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
	"github.com/letterly/letterly/internal/web/middleware/auth"
	"github.com/letterly/letterly/internal/web/session"
)

const (
	// Path is the base path of the asset routes.
	Path = handler.APIPath + "/assets"
	// UploadPath is the upload endpoint.
	UploadPath = handler.APIPath + "/upload"
)

// Service is the assets handler service.
type Service struct {
	db *gorm.DB
}

// Handler is the assets handler.
var Handler = Service{}

// Init initializes the assets handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Post(UploadPath, auth.RequireAdmin(sessions), s.Upload)

	// The file route must be registered before the section route so
	// "file" is not captured as a section tag.
	app.Get(Path+"/file/:id", s.GetFile)
	app.Get(Path+"/:section", s.ListSection)
	app.Delete(Path+"/:id", auth.RequireAdmin(sessions), s.Delete)

	return nil
}

type uploadRequest struct {
	Name        string `json:"name"`
	Section     string `json:"section"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// Upload stores a base64 encoded asset. Admin only.
func (s *Service) Upload(c *fiber.Ctx) error {
	var req uploadRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Missing required file information", nil)
	}

	if req.Name == "" || req.Section == "" || req.ContentType == "" || req.Data == "" {
		return handler.BadRequest(c, "Missing required file information", nil)
	}

	a := models.SiteAsset{
		Name:        req.Name,
		Section:     req.Section,
		ContentType: req.ContentType,
		Data:        req.Data,
	}

	if err := assetcontroller.Create(s.db, &a); err != nil {
		log.Error().Err(err).Msg("failed to store asset")
		return handler.ServerError(c, "Failed to upload file")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"asset":   a.Meta(),
	})
}

// ListSection returns the metadata of every asset in a section. The
// base64 payload is stripped to keep list responses small.
func (s *Service) ListSection(c *fiber.Ctx) error {
	assets, err := assetcontroller.GetBySection(s.db, c.Params("section"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list assets")
		return handler.ServerError(c, "Failed to fetch assets")
	}

	meta := make([]models.SiteAssetMeta, 0, len(assets))
	for i := range assets {
		meta = append(meta, assets[i].Meta())
	}

	return c.JSON(meta)
}

// GetFile returns one full asset row, including its base64 data.
func (s *Service) GetFile(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid asset id", nil)
	}

	a, err := assetcontroller.Get(s.db, id)
	if err != nil {
		if errors.Is(err, assetcontroller.ErrAssetNotFound) {
			return handler.NotFound(c, "File not found")
		}

		log.Error().Err(err).Msg("failed to fetch asset")
		return handler.ServerError(c, "Failed to fetch file")
	}

	return c.JSON(a)
}

// Delete removes an asset. Deleting an absent id still returns 204.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid asset id", nil)
	}

	if err := assetcontroller.Delete(s.db, id); err != nil && !errors.Is(err, assetcontroller.ErrAssetNotFound) {
		log.Error().Err(err).Msg("failed to delete asset")
		return handler.ServerError(c, "Failed to delete file")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
