package service

import (
	"context"

	"linkup/internal/models"
	"linkup/internal/observability"
	"linkup/internal/repository"
)

// FollowService owns mutations and projections of the follow graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge actor → target. The existence check runs against
// current store state immediately before the insert; the edge table's unique
// index resolves the remaining race window, so two concurrent follows of the
// same pair can never both succeed.
func (s *FollowService) Follow(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewSelfReferenceError("Cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	exists, err := s.followRepo.Exists(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewAlreadyExistsError("Already following this user")
	}

	if err := s.followRepo.CreateEdge(ctx, actorID, targetID); err != nil {
		return err
	}

	observability.FollowMutations.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the edge actor → target.
func (s *FollowService) Unfollow(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewSelfReferenceError("Cannot unfollow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.followRepo.DeleteEdge(ctx, actorID, targetID); err != nil {
		return err
	}

	observability.FollowMutations.WithLabelValues("unfollow").Inc()
	return nil
}

// Followers returns the accounts following userID, in edge insertion order.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID)
}

// Following returns the accounts userID follows, in edge insertion order.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID)
}

// IsFollowing reports whether the edge actor → target exists.
func (s *FollowService) IsFollowing(ctx context.Context, actorID, targetID uint) (bool, error) {
	return s.followRepo.Exists(ctx, actorID, targetID)
}
