package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	page := parsePagination(c, s.config.PageSize)

	groups, err := s.groupService.ListGroups(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:slug
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groupService.GetGroup(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}

// GetGroupPosts handles GET /api/groups/:slug/posts
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, s.config.PageSize)

	group, err := s.groupService.GetGroup(ctx, c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}

	posts, err := s.postRepo.GetByGroupID(ctx, group.ID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// CreateGroup handles POST /api/groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title" validate:"required,max=255"`
		Slug        string `json:"slug" validate:"required,max=255"`
		Description string `json:"description"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	group, err := s.groupService.CreateGroup(c.Context(), req.Title, req.Slug, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateGroup handles PUT /api/groups/:slug
func (s *Server) UpdateGroup(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title" validate:"required,max=255"`
		Description string `json:"description"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	group, err := s.groupService.UpdateGroup(c.Context(), c.Params("slug"), req.Title, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}

// DeleteGroup handles DELETE /api/groups/:slug. Posts in the group survive
// with their group reference cleared.
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	if err := s.groupService.DeleteGroup(c.Context(), c.Params("slug")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
