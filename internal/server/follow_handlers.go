package server

import (
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if followErr := s.followService.Follow(c.Context(), userID, targetID); followErr != nil {
		return models.RespondWithAppError(c, followErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Followed successfully",
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unfollowErr := s.followService.Unfollow(c.Context(), userID, targetID); unfollowErr != nil {
		return models.RespondWithAppError(c, unfollowErr)
	}

	return c.JSON(fiber.Map{
		"message": "Unfollowed successfully",
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, listErr := s.followService.Followers(c.Context(), targetID)
	if listErr != nil {
		return models.RespondWithAppError(c, listErr)
	}

	return c.JSON(fiber.Map{
		"followers": s.projector.UserSummaries(users),
		"count":     len(users),
	})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, listErr := s.followService.Following(c.Context(), targetID)
	if listErr != nil {
		return models.RespondWithAppError(c, listErr)
	}

	return c.JSON(fiber.Map{
		"following": s.projector.UserSummaries(users),
		"count":     len(users),
	})
}
