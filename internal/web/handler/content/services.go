package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
)

type createServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order" validate:"gte=0"`
}

type updateServiceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

// ListServices returns all service items in display order.
func (s *Service) ListServices(c *fiber.Ctx) error {
	items, err := contentcontroller.ListServiceItems(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")
		return handler.ServerError(c, "Failed to fetch services")
	}

	if items == nil {
		items = []models.ServiceItem{}
	}

	return c.JSON(items)
}

// CreateService adds a service item. Without an explicit order it is
// appended after the current maximum.
func (s *Service) CreateService(c *fiber.Ctx) error {
	var req createServiceRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid service data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid service data", handler.ValidationFieldErrors(err))
	}

	item := models.ServiceItem{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.Order,
	}

	if err := contentcontroller.CreateServiceItem(s.db, &item); err != nil {
		log.Error().Err(err).Msg("failed to create service")
		return handler.ServerError(c, "Failed to create service")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateService partially updates a service item.
func (s *Service) UpdateService(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid service id", nil)
	}

	var req updateServiceRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid service data", nil)
	}

	item, err := contentcontroller.UpdateServiceItem(s.db, id, contentcontroller.ServiceItemUpdate{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.Order,
	})
	if err != nil {
		if errors.Is(err, contentcontroller.ErrNotFound) {
			return handler.NotFound(c, "Not found")
		}

		log.Error().Err(err).Msg("failed to update service")
		return handler.ServerError(c, "Failed to update service")
	}

	return c.JSON(item)
}

// DeleteService removes a service item. Deleting an absent id still
// returns 204.
func (s *Service) DeleteService(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid service id", nil)
	}

	if err := contentcontroller.DeleteServiceItem(s.db, id); err != nil {
		log.Error().Err(err).Msg("failed to delete service")
		return handler.ServerError(c, "Failed to delete service")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
