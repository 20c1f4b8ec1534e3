package server

import (
	"io"

	"linkup/internal/models"
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	view, err := s.projector.UserView(c.Context(), user, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(view)
}

// UpdateProfileRequest is the request body for PUT /api/users/me
type UpdateProfileRequest struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Bio       *string `json:"bio"`
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), userID, service.UpdateProfileInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Bio:       req.Bio,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	view, err := s.projector.UserView(c.Context(), user, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(view)
}

// UpdateAvatar handles POST /api/users/me/avatar (multipart image upload)
func (s *Server) UpdateAvatar(c *fiber.Ctx) error {
	userID := currentUserID(c)

	data, contentType, err := s.readImageUpload(c, "avatar")
	if err != nil {
		return nil
	}
	if len(data) == 0 {
		return models.RespondWithAppError(c,
			models.NewValidationError("Avatar file is required"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), userID, service.UpdateProfileInput{
		Avatar:            data,
		AvatarContentType: contentType,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	view, err := s.projector.UserView(c.Context(), user, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(view)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	viewerID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, getErr := s.userService.GetProfile(c.Context(), targetID)
	if getErr != nil {
		return models.RespondWithAppError(c, getErr)
	}

	view, viewErr := s.projector.UserView(c.Context(), user, viewerID)
	if viewErr != nil {
		return models.RespondWithAppError(c, viewErr)
	}
	return c.JSON(view)
}

// GetSuggestions handles GET /api/users/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	userID := currentUserID(c)

	users, err := s.userService.Suggestions(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"suggestions": s.projector.UserSummaries(users),
	})
}

// ActivatePrime handles POST /api/users/me/prime
func (s *Server) ActivatePrime(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.ActivatePrime(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Prime membership activated",
		"prime":   user.Prime,
	})
}

// GetPrimeStatus handles GET /api/users/me/prime
func (s *Server) GetPrimeStatus(c *fiber.Ctx) error {
	userID := currentUserID(c)

	prime, err := s.userService.IsPrime(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"prime": prime})
}

// readImageUpload reads an optional multipart image file, enforcing the
// configured size limit and an image/* content type. On a validation failure
// it writes the response and returns a non-nil error; callers return nil.
func (s *Server) readImageUpload(c *fiber.Ctx, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// No file in the form is not an error for optional uploads.
		return nil, "", nil
	}

	maxBytes := int64(s.config.ImageMaxUploadSizeMB) * 1024 * 1024
	if fh.Size > maxBytes {
		_ = models.RespondWithAppError(c,
			models.NewValidationError("Image exceeds the maximum upload size"))
		return nil, "", errResponseWritten
	}

	contentType := fh.Header.Get("Content-Type")
	if len(contentType) < 6 || contentType[:6] != "image/" {
		_ = models.RespondWithAppError(c,
			models.NewValidationError("Only image uploads are allowed"))
		return nil, "", errResponseWritten
	}

	f, err := fh.Open()
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
		return nil, "", errResponseWritten
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
		return nil, "", errResponseWritten
	}
	if int64(len(data)) > maxBytes {
		_ = models.RespondWithAppError(c,
			models.NewValidationError("Image exceeds the maximum upload size"))
		return nil, "", errResponseWritten
	}

	return data, contentType, nil
}
