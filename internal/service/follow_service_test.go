package service

import (
	"context"
	"testing"

	"linkup/internal/models"
)

type followRepoStub struct {
	createEdgeFn     func(context.Context, uint, uint) error
	deleteEdgeFn     func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	followersFn      func(context.Context, uint) ([]models.User, error)
	followingFn      func(context.Context, uint) ([]models.User, error)
	followingIDsFn   func(context.Context, uint) ([]uint, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) CreateEdge(ctx context.Context, followerID, followeeID uint) error {
	return s.createEdgeFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) DeleteEdge(ctx context.Context, followerID, followeeID uint) error {
	return s.deleteEdgeFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createEdgeFn:     func(context.Context, uint, uint) error { return nil },
		deleteEdgeFn:     func(context.Context, uint, uint) error { return nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		followersFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followingFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followingIDsFn:   func(context.Context, uint) ([]uint, error) { return nil, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

func userRepoWith(ids ...uint) *memUserRepo {
	repo := newMemUserRepo()
	for _, id := range ids {
		repo.users[id] = &models.User{ID: id, Verified: true}
		if id > repo.nextID {
			repo.nextID = id
		}
	}
	return repo
}

func TestFollowSelf(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), userRepoWith(3))

	err := svc.Follow(context.Background(), 3, 3)
	assertCode(t, err, models.CodeSelfReference)
}

func TestFollowMissingTarget(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), userRepoWith(1))

	err := svc.Follow(context.Background(), 1, 99)
	assertCode(t, err, models.CodeNotFound)
}

func TestFollowDuplicate(t *testing.T) {
	repo := noopFollowRepo()
	repo.existsFn = func(context.Context, uint, uint) (bool, error) { return true, nil }
	svc := NewFollowService(repo, userRepoWith(1, 2))

	err := svc.Follow(context.Background(), 1, 2)
	assertCode(t, err, models.CodeAlreadyExists)
}

func TestFollowCreatesEdge(t *testing.T) {
	var gotFollower, gotFollowee uint
	repo := noopFollowRepo()
	repo.createEdgeFn = func(_ context.Context, followerID, followeeID uint) error {
		gotFollower, gotFollowee = followerID, followeeID
		return nil
	}
	svc := NewFollowService(repo, userRepoWith(1, 2))

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if gotFollower != 1 || gotFollowee != 2 {
		t.Fatalf("expected edge 1 -> 2, got %d -> %d", gotFollower, gotFollowee)
	}
}

func TestUnfollowSelf(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), userRepoWith(3))

	err := svc.Unfollow(context.Background(), 3, 3)
	assertCode(t, err, models.CodeSelfReference)
}

func TestUnfollowMissingEdge(t *testing.T) {
	repo := noopFollowRepo()
	repo.deleteEdgeFn = func(context.Context, uint, uint) error {
		return models.NewEdgeNotFoundError("You are not following this user")
	}
	svc := NewFollowService(repo, userRepoWith(1, 2))

	err := svc.Unfollow(context.Background(), 1, 2)
	assertCode(t, err, models.CodeEdgeNotFound)
}

func TestFollowersMissingUser(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), userRepoWith(1))

	_, err := svc.Followers(context.Background(), 42)
	assertCode(t, err, models.CodeNotFound)
}
