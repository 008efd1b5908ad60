package service

import (
	"context"
	"regexp"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// GroupService provides group business logic. Groups are identified by slug
// on every surface; the numeric ID stays internal.
type GroupService struct {
	groupRepo repository.GroupRepository
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NewGroupService returns a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*models.Group, error) {
	if strings.TrimSpace(title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, models.NewValidationError("Slug must be lowercase letters, digits, and hyphens")
	}

	if _, err := s.groupRepo.GetBySlug(ctx, slug); err == nil {
		return nil, models.NewValidationError("A group with this slug already exists")
	}

	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) ListGroups(ctx context.Context, limit, offset int) ([]models.Group, error) {
	return s.groupRepo.List(ctx, limit, offset)
}

// UpdateGroup edits the group's text fields. The slug itself is immutable
// once assigned; it is the group's identity.
func (s *GroupService) UpdateGroup(ctx context.Context, slug, title, description string) (*models.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, models.NewValidationError("Title is required")
	}

	group.Title = title
	group.Description = description
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return s.groupRepo.GetBySlug(ctx, slug)
}

// DeleteGroup removes the group. Its posts stay behind with their group
// reference cleared by the database.
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.groupRepo.Delete(ctx, group.ID)
}
