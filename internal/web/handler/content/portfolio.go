package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
)

type createPortfolioRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageID     *uint64 `json:"imageId"`
	Order       int     `json:"order" validate:"gte=0"`
}

type updatePortfolioRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageID     *uint64 `json:"imageId"`
	Order       *int    `json:"order"`
}

// ListPortfolio returns all portfolio items in display order.
func (s *Service) ListPortfolio(c *fiber.Ctx) error {
	items, err := contentcontroller.ListPortfolioItems(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list portfolio items")
		return handler.ServerError(c, "Failed to fetch portfolio items")
	}

	if items == nil {
		items = []models.PortfolioItem{}
	}

	return c.JSON(items)
}

// CreatePortfolioItem adds a portfolio item.
func (s *Service) CreatePortfolioItem(c *fiber.Ctx) error {
	var req createPortfolioRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid portfolio data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid portfolio data", handler.ValidationFieldErrors(err))
	}

	item := models.PortfolioItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageID:     req.ImageID,
		SortOrder:   req.Order,
	}

	if err := contentcontroller.CreatePortfolioItem(s.db, &item); err != nil {
		log.Error().Err(err).Msg("failed to create portfolio item")
		return handler.ServerError(c, "Failed to create portfolio item")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdatePortfolioItem partially updates a portfolio item.
func (s *Service) UpdatePortfolioItem(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid portfolio id", nil)
	}

	var req updatePortfolioRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid portfolio data", nil)
	}

	item, err := contentcontroller.UpdatePortfolioItem(s.db, id, contentcontroller.PortfolioItemUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageID:     req.ImageID,
		SortOrder:   req.Order,
	})
	if err != nil {
		if errors.Is(err, contentcontroller.ErrNotFound) {
			return handler.NotFound(c, "Not found")
		}

		log.Error().Err(err).Msg("failed to update portfolio item")
		return handler.ServerError(c, "Failed to update portfolio item")
	}

	return c.JSON(item)
}

// DeletePortfolioItem removes a portfolio item.
func (s *Service) DeletePortfolioItem(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid portfolio id", nil)
	}

	if err := contentcontroller.DeletePortfolioItem(s.db, id); err != nil {
		log.Error().Err(err).Msg("failed to delete portfolio item")
		return handler.ServerError(c, "Failed to delete portfolio item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
