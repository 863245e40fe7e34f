package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/web/handler"
)

type aboutRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	ImageID     *uint64 `json:"imageId"`
}

// GetAbout returns the about singleton, or an empty object when the
// row has never been written.
func (s *Service) GetAbout(c *fiber.Ctx) error {
	about, err := contentcontroller.GetAbout(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch about content")
		return handler.ServerError(c, "Failed to fetch about content")
	}

	if about == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(about)
}

// UpdateAbout upserts the about singleton.
func (s *Service) UpdateAbout(c *fiber.Ctx) error {
	var req aboutRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid about content", nil)
	}

	about, err := contentcontroller.UpdateAbout(s.db, contentcontroller.AboutUpdate{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Content:     req.Content,
		ImageID:     req.ImageID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update about content")
		return handler.ServerError(c, "Failed to update about content")
	}

	return c.JSON(about)
}
