package service

import (
	"context"

	"yatube/internal/middleware"
	"yatube/internal/repository"
)

// FollowService provides follow graph business logic.
//
// Follow and Unfollow are idempotent: repeating either call leaves the graph
// unchanged, and a self-follow is declined silently rather than reported as
// an error. The follows table's unique and check constraints back these
// rules up under concurrent requests.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowStatus describes the caller's relation to an author plus the
// author's follower statistics.
type FollowStatus struct {
	Following      bool  `json:"following"`
	Self           bool  `json:"self"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge caller->author unless it already exists or the
// caller is the author. Both cases return nil.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.ID == userID {
		middleware.FollowOperations.WithLabelValues("follow", "noop").Inc()
		return nil
	}

	created, err := s.followRepo.Follow(ctx, userID, author.ID)
	if err != nil {
		return err
	}
	if created {
		middleware.FollowOperations.WithLabelValues("follow", "created").Inc()
	} else {
		middleware.FollowOperations.WithLabelValues("follow", "noop").Inc()
	}
	return nil
}

// Unfollow removes the edge caller->author if present.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if err := s.followRepo.Unfollow(ctx, userID, author.ID); err != nil {
		return err
	}
	middleware.FollowOperations.WithLabelValues("unfollow", "removed").Inc()
	return nil
}

// Status reports whether the caller follows the author, together with the
// author's follower/following counts. userID may be zero for anonymous
// callers; Following is then always false.
func (s *FollowService) Status(ctx context.Context, userID uint, authorUsername string) (*FollowStatus, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	status := &FollowStatus{Self: userID != 0 && userID == author.ID}

	if userID != 0 && !status.Self {
		following, err := s.followRepo.IsFollowing(ctx, userID, author.ID)
		if err != nil {
			return nil, err
		}
		status.Following = following
	}

	if status.FollowerCount, err = s.followRepo.FollowerCount(ctx, author.ID); err != nil {
		return nil, err
	}
	if status.FollowingCount, err = s.followRepo.FollowingCount(ctx, author.ID); err != nil {
		return nil, err
	}

	return status, nil
}
