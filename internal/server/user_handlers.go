package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username — the author page with post
// count, follower statistics, and (for logged-in callers) follow status.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.Context(), currentUserID(c), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteMyAccount handles DELETE /api/users/me. The caller's posts,
// comments, and follow edges are removed with the account.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.userService.DeleteAccount(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FollowUser handles POST /api/users/:username/follow. Following an already
// followed author, or yourself, is a silent no-op.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.followService.Follow(c.Context(), userID, c.Params("username")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /api/users/:username/follow. Unfollowing an
// author you do not follow is a no-op.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.followService.Unfollow(c.Context(), userID, c.Params("username")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowStatus handles GET /api/users/:username/follow
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	status, err := s.followService.Status(c.Context(), currentUserID(c), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(status)
}
