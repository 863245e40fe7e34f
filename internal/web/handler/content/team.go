package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	contentcontroller "github.com/letterly/letterly/internal/db/controller/content"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/handler"
)

type createTeamMemberRequest struct {
	Name        string  `json:"name" validate:"required"`
	Role        string  `json:"role" validate:"required"`
	Bio         string  `json:"bio"`
	SocialLinks string  `json:"socialLinks"`
	ImageID     *uint64 `json:"imageId"`
	Order       int     `json:"order" validate:"gte=0"`
}

type updateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Bio         *string `json:"bio"`
	SocialLinks *string `json:"socialLinks"`
	ImageID     *uint64 `json:"imageId"`
	Order       *int    `json:"order"`
}

// ListTeam returns all team members in display order.
func (s *Service) ListTeam(c *fiber.Ctx) error {
	members, err := contentcontroller.ListTeamMembers(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list team members")
		return handler.ServerError(c, "Failed to fetch team members")
	}

	if members == nil {
		members = []models.TeamMember{}
	}

	return c.JSON(members)
}

// CreateTeamMember adds a team member.
func (s *Service) CreateTeamMember(c *fiber.Ctx) error {
	var req createTeamMemberRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid team member data", nil)
	}

	if err := s.validator.Struct(&req); err != nil {
		return handler.BadRequest(c, "Invalid team member data", handler.ValidationFieldErrors(err))
	}

	member := models.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
		ImageID:     req.ImageID,
		SortOrder:   req.Order,
	}

	if err := contentcontroller.CreateTeamMember(s.db, &member); err != nil {
		log.Error().Err(err).Msg("failed to create team member")
		return handler.ServerError(c, "Failed to create team member")
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateTeamMember partially updates a team member.
func (s *Service) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid team member id", nil)
	}

	var req updateTeamMemberRequest
	if err := handler.DecodeStrict(c, &req); err != nil {
		return handler.BadRequest(c, "Invalid team member data", nil)
	}

	member, err := contentcontroller.UpdateTeamMember(s.db, id, contentcontroller.TeamMemberUpdate{
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
		ImageID:     req.ImageID,
		SortOrder:   req.Order,
	})
	if err != nil {
		if errors.Is(err, contentcontroller.ErrNotFound) {
			return handler.NotFound(c, "Not found")
		}

		log.Error().Err(err).Msg("failed to update team member")
		return handler.ServerError(c, "Failed to update team member")
	}

	return c.JSON(member)
}

// DeleteTeamMember removes a team member.
func (s *Service) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid team member id", nil)
	}

	if err := contentcontroller.DeleteTeamMember(s.db, id); err != nil {
		log.Error().Err(err).Msg("failed to delete team member")
		return handler.ServerError(c, "Failed to delete team member")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
