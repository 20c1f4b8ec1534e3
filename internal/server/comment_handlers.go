package server

import (
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCommentRequest is the request body for POST /api/posts/:id/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req CreateCommentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, createErr := s.commentService.AddComment(c.Context(), postID, userID, req.Content)
	if createErr != nil {
		return models.RespondWithAppError(c, createErr)
	}

	views := s.projector.CommentViews([]models.Comment{*comment})
	return c.Status(fiber.StatusCreated).JSON(views[0])
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, listErr := s.commentService.GetComments(c.Context(), postID)
	if listErr != nil {
		return models.RespondWithAppError(c, listErr)
	}

	return c.JSON(fiber.Map{
		"comments": s.projector.CommentViews(comments),
		"count":    len(comments),
	})
}
