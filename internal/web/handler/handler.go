// Package handler holds the shared pieces of the web handler packages:
// the service interface, route constants and the JSON request/response
// helpers applied uniformly across the API.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	"github.com/letterly/letterly/internal/web/session"
)

const (
	// APIPath is the prefix of all API routes.
	APIPath = "/api"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if the app, cfg, db or sessions pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg, db or sessions is nil"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error
}

// FieldError is one field-level validation failure in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DecodeStrict decodes the JSON request body into out, rejecting unknown
// fields. Partial-update bodies are explicit optional-field structs, so
// anything the struct does not name is a client error rather than data
// silently passed through to the store.
func DecodeStrict(c *fiber.Ctx, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()

	return dec.Decode(out)
}

// ValidationFieldErrors flattens a validator error into field errors for
// the response body. Returns nil when err is not a validation error.
func ValidationFieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]FieldError, len(validationErrors))
	for i, ve := range validationErrors {
		out[i] = FieldError{
			Field:   ve.Field(),
			Message: "failed validation tag '" + ve.Tag() + "'",
		}
	}

	return out
}

// ParseIDParam parses the :id route parameter.
func ParseIDParam(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

// BadRequest writes a 400 with a message and optional field errors.
func BadRequest(c *fiber.Ctx, message string, fieldErrors []FieldError) error {
	body := fiber.Map{"message": message}
	if len(fieldErrors) > 0 {
		body["errors"] = fieldErrors
	}

	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// NotFound writes a 404 with a message.
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": message})
}

// ServerError writes a 500 with a generic message. The real error is
// logged by the caller, never sent to the client.
func ServerError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": message})
}
