package service

import (
	"context"

	"yatube/internal/models"
)

// Hand-written repository stubs with overridable function fields. Each test
// replaces only the calls it cares about.

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

type followRepoStub struct {
	followFn         func(context.Context, uint, uint) (bool, error)
	unfollowFn       func(context.Context, uint, uint) error
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	followerCountFn  func(context.Context, uint) (int64, error)
	followingCountFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followFn(ctx, userID, authorID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, userID, authorID uint) error {
	return s.unfollowFn(ctx, userID, authorID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.isFollowingFn(ctx, userID, authorID)
}
func (s *followRepoStub) FollowerCount(ctx context.Context, authorID uint) (int64, error) {
	return s.followerCountFn(ctx, authorID)
}
func (s *followRepoStub) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followingCountFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:         func(context.Context, uint, uint) (bool, error) { return true, nil },
		unfollowFn:       func(context.Context, uint, uint) error { return nil },
		isFollowingFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		followerCountFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		followingCountFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	getByAuthorIDFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	getByGroupIDFn    func(context.Context, uint, int, int) ([]*models.Post, error)
	listFn            func(context.Context, int, int) ([]*models.Post, error)
	feedFn            func(context.Context, uint, int, int) ([]*models.Post, error)
	countByAuthorIDFn func(context.Context, uint) (int64, error)
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByAuthorID(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByAuthorIDFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) GetByGroupID(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByGroupIDFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.feedFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorIDFn(ctx, authorID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(context.Context, *models.Post) error { return nil },
		getByIDFn:         func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByAuthorIDFn:   func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		getByGroupIDFn:    func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		listFn:            func(context.Context, int, int) ([]*models.Post, error) { return nil, nil },
		feedFn:            func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		countByAuthorIDFn: func(context.Context, uint) (int64, error) { return 0, nil },
		updateFn:          func(context.Context, *models.Post) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	getByPostIDFn func(context.Context, uint, int, int) ([]models.Comment, error)
	updateFn      func(context.Context, *models.Comment) error
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) GetByPostID(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.getByPostIDFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(context.Context, *models.Comment) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		getByPostIDFn: func(context.Context, uint, int, int) ([]models.Comment, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Comment) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}

type groupRepoStub struct {
	createFn    func(context.Context, *models.Group) error
	getByIDFn   func(context.Context, uint) (*models.Group, error)
	getBySlugFn func(context.Context, string) (*models.Group, error)
	listFn      func(context.Context, int, int) ([]models.Group, error)
	updateFn    func(context.Context, *models.Group) error
	deleteFn    func(context.Context, uint) error
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context, limit, offset int) ([]models.Group, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *groupRepoStub) Update(ctx context.Context, group *models.Group) error {
	return s.updateFn(ctx, group)
}
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		createFn:    func(context.Context, *models.Group) error { return nil },
		getByIDFn:   func(context.Context, uint) (*models.Group, error) { return &models.Group{}, nil },
		getBySlugFn: func(context.Context, string) (*models.Group, error) { return &models.Group{}, nil },
		listFn:      func(context.Context, int, int) ([]models.Group, error) { return nil, nil },
		updateFn:    func(context.Context, *models.Group) error { return nil },
		deleteFn:    func(context.Context, uint) error { return nil },
	}
}
