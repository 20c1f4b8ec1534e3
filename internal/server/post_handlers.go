package server

import (
	"linkup/internal/models"
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts (multipart form: caption + optional image)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	data, contentType, err := s.readImageUpload(c, "image")
	if err != nil {
		return nil
	}

	post, createErr := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:         userID,
		Caption:          c.FormValue("caption"),
		Image:            data,
		ImageContentType: contentType,
	})
	if createErr != nil {
		return models.RespondWithAppError(c, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(s.projector.PostView(post))
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := currentUserID(c)
	p := parsePagination(c, 50)

	posts, err := s.postService.HomeFeed(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": s.projector.PostViews(posts),
		"count": len(posts),
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postService.GetPost(c.Context(), postID, userID)
	if getErr != nil {
		return models.RespondWithAppError(c, getErr)
	}

	return c.JSON(s.projector.PostView(post))
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 50)

	posts, listErr := s.postService.UserPosts(c.Context(), targetID, userID, p.Limit, p.Offset)
	if listErr != nil {
		return models.RespondWithAppError(c, listErr)
	}

	return c.JSON(fiber.Map{
		"posts": s.projector.PostViews(posts),
		"count": len(posts),
	})
}

// UpdatePostRequest is the request body for PUT /api/posts/:id
type UpdatePostRequest struct {
	Caption string `json:"caption"`
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdatePostRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, updateErr := s.postService.UpdateCaption(c.Context(), postID, userID, req.Caption)
	if updateErr != nil {
		return models.RespondWithAppError(c, updateErr)
	}

	return c.JSON(s.projector.PostView(post))
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if deleteErr := s.postService.DeletePost(c.Context(), postID, userID); deleteErr != nil {
		return models.RespondWithAppError(c, deleteErr)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, likeErr := s.postService.Like(c.Context(), postID, userID)
	if likeErr != nil {
		return models.RespondWithAppError(c, likeErr)
	}

	return c.JSON(s.projector.PostView(post))
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, unlikeErr := s.postService.Unlike(c.Context(), postID, userID)
	if unlikeErr != nil {
		return models.RespondWithAppError(c, unlikeErr)
	}

	return c.JSON(s.projector.PostView(post))
}
