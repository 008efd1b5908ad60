package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// UserService provides profile composition and account deletion.
type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// Profile is an author page: the user, their post count, and the follow
// statistics the profile surface renders.
type Profile struct {
	User           *models.User `json:"user"`
	PostCount      int64        `json:"post_count"`
	FollowerCount  int64        `json:"follower_count"`
	FollowingCount int64        `json:"following_count"`
	Following      bool         `json:"following"`
	Self           bool         `json:"self"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// GetProfile composes the author page for the given username. callerID may
// be zero for anonymous visitors.
func (s *UserService) GetProfile(ctx context.Context, callerID uint, username string) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User: user,
		Self: callerID != 0 && callerID == user.ID,
	}

	if profile.PostCount, err = s.postRepo.CountByAuthorID(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.FollowerCount, err = s.followRepo.FollowerCount(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.FollowingCount, err = s.followRepo.FollowingCount(ctx, user.ID); err != nil {
		return nil, err
	}

	if callerID != 0 && !profile.Self {
		if profile.Following, err = s.followRepo.IsFollowing(ctx, callerID, user.ID); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// DeleteAccount removes the user. The database cascades the deletion to the
// user's posts, comments, and every follow edge they participate in.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
