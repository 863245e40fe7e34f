package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/web/handler"
)

type heroRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ButtonText  *string `json:"buttonText"`
	ButtonLink  *string `json:"buttonLink"`
	ImageID     *uint64 `json:"imageId"`
}

// GetHero returns the hero singleton, or an empty object when the row
// has never been written.
func (s *Service) GetHero(c *fiber.Ctx) error {
	hero, err := contentcontroller.GetHero(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch hero content")
		return handler.ServerError(c, "Failed to fetch hero content")
	}

	if hero == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(hero)
}

// UpdateHero upserts the hero singleton. Fields absent from the body
// keep their stored values.
func (s *Service) UpdateHero(c *fiber.Ctx) error {
	var req heroRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid hero content", nil)
	}

	hero, err := contentcontroller.UpdateHero(s.db, contentcontroller.HeroUpdate{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ButtonText:  req.ButtonText,
		ButtonLink:  req.ButtonLink,
		ImageID:     req.ImageID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update hero content")
		return handler.ServerError(c, "Failed to update hero content")
	}

	return c.JSON(hero)
}
