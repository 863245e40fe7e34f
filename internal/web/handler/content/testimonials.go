package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
)

type createTestimonialRequest struct {
	Content  string  `json:"content" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	Position string  `json:"position"`
	Company  string  `json:"company"`
	ImageID  *uint64 `json:"imageId"`
	Order    int     `json:"order" validate:"gte=0"`
}

type updateTestimonialRequest struct {
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Position *string `json:"position"`
	Company  *string `json:"company"`
	ImageID  *uint64 `json:"imageId"`
	Order    *int    `json:"order"`
}

// ListTestimonials returns all testimonials in display order.
func (s *Service) ListTestimonials(c *fiber.Ctx) error {
	items, err := contentcontroller.ListTestimonialItems(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list testimonials")
		return handler.ServerError(c, "Failed to fetch testimonials")
	}

	if items == nil {
		items = []models.TestimonialItem{}
	}

	return c.JSON(items)
}

// CreateTestimonial adds a testimonial.
func (s *Service) CreateTestimonial(c *fiber.Ctx) error {
	var req createTestimonialRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid testimonial data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid testimonial data", handler.ValidationFieldErrors(err))
	}

	item := models.TestimonialItem{
		Content:   req.Content,
		Author:    req.Author,
		Position:  req.Position,
		Company:   req.Company,
		ImageID:   req.ImageID,
		SortOrder: req.Order,
	}

	if err := contentcontroller.CreateTestimonialItem(s.db, &item); err != nil {
		log.Error().Err(err).Msg("failed to create testimonial")
		return handler.ServerError(c, "Failed to create testimonial")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateTestimonial partially updates a testimonial.
func (s *Service) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid testimonial id", nil)
	}

	var req updateTestimonialRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid testimonial data", nil)
	}

	item, err := contentcontroller.UpdateTestimonialItem(s.db, id, contentcontroller.TestimonialItemUpdate{
		Content:   req.Content,
		Author:    req.Author,
		Position:  req.Position,
		Company:   req.Company,
		ImageID:   req.ImageID,
		SortOrder: req.Order,
	})
	if err != nil {
		if errors.Is(err, contentcontroller.ErrNotFound) {
			return handler.NotFound(c, "Not found")
		}

		log.Error().Err(err).Msg("failed to update testimonial")
		return handler.ServerError(c, "Failed to update testimonial")
	}

	return c.JSON(item)
}

// DeleteTestimonial removes a testimonial.
func (s *Service) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid testimonial id", nil)
	}

	if err := contentcontroller.DeleteTestimonialItem(s.db, id); err != nil {
		log.Error().Err(err).Msg("failed to delete testimonial")
		return handler.ServerError(c, "Failed to delete testimonial")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
