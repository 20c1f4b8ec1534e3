package service

import (
	"context"
	"strings"

	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/storage"
)

const (
	maxBioLength   = 500
	suggestionsCap = 10
)

// UserService covers profile reads and edits, follow suggestions, and prime
// activation.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	blobs      storage.BlobStore
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, blobs storage.BlobStore) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		blobs:      blobs,
	}
}

// GetProfile returns the target account.
func (s *UserService) GetProfile(ctx context.Context, targetID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, targetID)
}

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Firstname         *string
	Lastname          *string
	Bio               *string
	Avatar            []byte
	AvatarContentType string
}

// UpdateProfile applies partial edits to the actor's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, actorID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if in.Firstname != nil {
		name := strings.TrimSpace(*in.Firstname)
		if name == "" {
			return nil, models.NewValidationError("Firstname cannot be empty")
		}
		user.Firstname = name
	}
	if in.Lastname != nil {
		user.Lastname = strings.TrimSpace(*in.Lastname)
	}
	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		if len(bio) > maxBioLength {
			return nil, models.NewValidationError("Bio cannot exceed 500 characters")
		}
		user.Bio = bio
	}
	if len(in.Avatar) > 0 {
		url, err := s.blobs.Store(ctx, in.Avatar, in.AvatarContentType)
		if err != nil {
			return nil, models.NewDependencyError("Avatar upload failed", err)
		}
		user.ImageURL = url
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Suggestions returns up to ten verified accounts the viewer does not
// already follow, newest accounts first.
func (s *UserService) Suggestions(ctx context.Context, viewerID uint) ([]models.User, error) {
	followingIDs, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	exclude := append(followingIDs, viewerID)
	return s.userRepo.ListVerifiedExcluding(ctx, exclude, suggestionsCap)
}

// ActivatePrime upgrades the actor to a prime account. Activating twice is
// an error.
func (s *UserService) ActivatePrime(ctx context.Context, actorID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user.Prime {
		return nil, models.NewValidationError("Account is already a prime member")
	}

	user.Prime = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IsPrime reports the account's prime status.
func (s *UserService) IsPrime(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Prime, nil
}
