package service

import (
	"context"
	"strings"

	"linkup/internal/models"
	"linkup/internal/repository"
)

// CommentService provides comment creation and listing. Comments are
// immutable once created.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment creates a comment on the given post.
func (s *CommentService) AddComment(ctx context.Context, postID, actorID uint, content string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content cannot be empty")
	}

	comment := &models.Comment{
		Content: content,
		UserID:  actorID,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, actorID)
	if err == nil {
		comment.User = *author
	}
	return comment, nil
}

// GetComments returns a post's comments oldest first.
func (s *CommentService) GetComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByPostID(ctx, postID)
}
