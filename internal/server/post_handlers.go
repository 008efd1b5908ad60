package server

import (
	"yatube/internal/cache"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts — the home listing, newest first.
//
// The first page with the default page size is served through a fixed-key
// cache with a 20-second TTL. Writes do not invalidate it; staleness inside
// the TTL window is an accepted tradeoff.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, s.config.PageSize)

	if page.Offset == 0 && page.Limit == s.config.PageSize {
		var posts []*models.Post
		hit, err := cache.Aside(ctx, cache.IndexKey, &posts, cache.IndexTTL, func() error {
			fetched, fetchErr := s.postService.ListPosts(ctx, page.Limit, page.Offset)
			posts = fetched
			return fetchErr
		})
		if err != nil {
			return respondServiceError(c, err)
		}
		if hit {
			middleware.CacheRequests.WithLabelValues(cache.IndexKey, "hit").Inc()
		} else {
			middleware.CacheRequests.WithLabelValues(cache.IndexKey, "miss").Inc()
		}
		return c.JSON(posts)
	}

	posts, err := s.postService.ListPosts(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text     string `json:"text" validate:"required"`
		GroupID  *uint  `json:"group_id"`
		ImageURL string `json:"image_url" validate:"omitempty,max=512"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	var req struct {
		Text     string `json:"text" validate:"required"`
		GroupID  *uint  `json:"group_id"`
		ImageURL string `json:"image_url" validate:"omitempty,max=512"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:   userID,
		PostID:   id,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFeed handles GET /api/feed — posts from every author the caller
// follows, newest first. An empty feed is a normal response, not an error.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, s.config.PageSize)

	posts, err := s.postService.Feed(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles GET /api/users/:username/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	username := c.Params("username")
	page := parsePagination(c, s.config.PageSize)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return respondServiceError(c, err)
	}

	posts, err := s.postRepo.GetByAuthorID(ctx, user.ID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
