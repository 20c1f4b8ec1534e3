package service

import (
	"context"
	"strings"

	"linkup/internal/models"
	"linkup/internal/observability"
	"linkup/internal/repository"
	"linkup/internal/storage"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 100
)

// PostService provides post CRUD, the home feed, and like membership.
type PostService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	blobs      storage.BlobStore
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository, userRepo repository.UserRepository, blobs storage.BlobStore) *PostService {
	return &PostService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		blobs:      blobs,
	}
}

// CreatePostInput carries a new post's content. Image is raw upload bytes;
// the service never inspects them beyond handing them to the blob store.
type CreatePostInput struct {
	AuthorID         uint
	Caption          string
	Image            []byte
	ImageContentType string
}

// CreatePost creates a post for its author. At least one of caption or image
// must be present.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	caption := strings.TrimSpace(in.Caption)
	if caption == "" && len(in.Image) == 0 {
		return nil, models.NewValidationError("Post must have either a caption or an image")
	}

	imageURL := ""
	if len(in.Image) > 0 {
		url, err := s.blobs.Store(ctx, in.Image, in.ImageContentType)
		if err != nil {
			return nil, models.NewDependencyError("Image upload failed", err)
		}
		imageURL = url
	}

	post := &models.Post{
		Caption:  caption,
		ImageURL: imageURL,
		UserID:   in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.AuthorID)
}

// GetPost returns a single post annotated for the viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// UpdateCaption replaces a post's caption. Only the owner may edit.
func (s *PostService) UpdateCaption(ctx context.Context, postID, actorID uint, caption string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	caption = strings.TrimSpace(caption)
	if caption == "" {
		return nil, models.NewValidationError("Caption cannot be empty")
	}

	post.Caption = caption
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. Only the owner may delete.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, actorID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// HomeFeed returns posts authored by the viewer and everyone the viewer
// follows, newest first. The liked annotation is computed per viewer in the
// same query and is never reused across viewers.
func (s *PostService) HomeFeed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	limit = clampLimit(limit)

	authorIDs, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authorIDs = append(authorIDs, viewerID)

	posts, err := s.postRepo.FeedByAuthors(ctx, authorIDs, viewerID, limit, offset)
	if err != nil {
		return nil, err
	}

	observability.FeedSize.Observe(float64(len(posts)))
	return posts, nil
}

// UserPosts returns the target account's posts, annotated for the viewer.
// Posts are visible to any authenticated caller; there is no follow gating.
func (s *PostService) UserPosts(ctx context.Context, targetID, viewerID uint, limit, offset int) ([]*models.Post, error) {
	limit = clampLimit(limit)

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByUserID(ctx, targetID, viewerID, limit, offset)
}

// Like adds the actor to the post's like set. Re-liking is an explicit
// error, not a silent no-op.
func (s *PostService) Like(ctx context.Context, postID, actorID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, actorID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, actorID)
}

// Unlike removes the actor from the post's like set; absence is an error.
func (s *PostService) Unlike(ctx context.Context, postID, actorID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, actorID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, actorID)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}
