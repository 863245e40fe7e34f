package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
)

type createFaqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    int    `json:"order" validate:"gte=0"`
}

type updateFaqRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
}

// ListFaq returns all FAQ items in display order.
func (s *Service) ListFaq(c *fiber.Ctx) error {
	items, err := contentcontroller.ListFaqItems(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list FAQ items")
		return handler.ServerError(c, "Failed to fetch FAQ items")
	}

	if items == nil {
		items = []models.FaqItem{}
	}

	return c.JSON(items)
}

// CreateFaqItem adds an FAQ item.
func (s *Service) CreateFaqItem(c *fiber.Ctx) error {
	var req createFaqRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid FAQ data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid FAQ data", handler.ValidationFieldErrors(err))
	}

	item := models.FaqItem{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.Order,
	}

	if err := contentcontroller.CreateFaqItem(s.db, &item); err != nil {
		log.Error().Err(err).Msg("failed to create FAQ item")
		return handler.ServerError(c, "Failed to create FAQ item")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateFaqItem partially updates an FAQ item.
func (s *Service) UpdateFaqItem(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid FAQ id", nil)
	}

	var req updateFaqRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid FAQ data", nil)
	}

	item, err := contentcontroller.UpdateFaqItem(s.db, id, contentcontroller.FaqItemUpdate{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.Order,
	})
	if err != nil {
		if errors.Is(err, contentcontroller.ErrNotFound) {
			return handler.NotFound(c, "Not found")
		}

		log.Error().Err(err).Msg("failed to update FAQ item")
		return handler.ServerError(c, "Failed to update FAQ item")
	}

	return c.JSON(item)
}

// DeleteFaqItem removes an FAQ item.
func (s *Service) DeleteFaqItem(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid FAQ id", nil)
	}

	if err := contentcontroller.DeleteFaqItem(s.db, id); err != nil {
		log.Error().Err(err).Msg("failed to delete FAQ item")
		return handler.ServerError(c, "Failed to delete FAQ item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
