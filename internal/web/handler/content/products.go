package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
)

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Features    string  `json:"features"`
	BgColor     string  `json:"bgColor"`
	ButtonColor string  `json:"buttonColor"`
	ImageID     *uint64 `json:"imageId"`
	Order       int     `json:"order" validate:"gte=0"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Features    *string `json:"features"`
	BgColor     *string `json:"bgColor"`
	ButtonColor *string `json:"buttonColor"`
	ImageID     *uint64 `json:"imageId"`
	Order       *int    `json:"order"`
}

// ListProducts returns all product items in display order.
func (s *Service) ListProducts(c *fiber.Ctx) error {
	items, err := contentcontroller.ListProductItems(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		return handler.ServerError(c, "Failed to fetch products")
	}

	if items == nil {
		items = []models.ProductItem{}
	}

	return c.JSON(items)
}

// CreateProduct adds a product item.
func (s *Service) CreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid product data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid product data", handler.ValidationFieldErrors(err))
	}

	item := models.ProductItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		BgColor:     req.BgColor,
		ButtonColor: req.ButtonColor,
		ImageID:     req.ImageID,
		SortOrder:   req.Order,
	}

	if err := contentcontroller.CreateProductItem(s.db, &item); err != nil {
		log.Error().Err(err).Msg("failed to create product")
		return handler.ServerError(c, "Failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateProduct partially updates a product item.
func (s *Service) UpdateProduct(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid product id", nil)
	}

	var req updateProductRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid product data", nil)
	}

	item, err := contentcontroller.UpdateProductItem(s.db, id, contentcontroller.ProductItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		BgColor:     req.BgColor,
		ButtonColor: req.ButtonColor,
		ImageID:     req.ImageID,
		SortOrder:   req.Order,
	})
	if err != nil {
		if errors.Is(err, contentcontroller.ErrNotFound) {
			return handler.NotFound(c, "Not found")
		}

		log.Error().Err(err).Msg("failed to update product")
		return handler.ServerError(c, "Failed to update product")
	}

	return c.JSON(item)
}

// DeleteProduct removes a product item.
func (s *Service) DeleteProduct(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid product id", nil)
	}

	if err := contentcontroller.DeleteProductItem(s.db, id); err != nil {
		log.Error().Err(err).Msg("failed to delete product")
		return handler.ServerError(c, "Failed to delete product")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
