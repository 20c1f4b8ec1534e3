package server

import (
	"linkup/internal/models"
	"linkup/internal/service"
	"linkup/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RegisterRequest is the request body for POST /api/auth/register
type RegisterRequest struct {
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Gender          string `json:"gender"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateMobile(req.Mobile); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}

	user, err := s.authService.Register(c.Context(), service.RegisterInput{
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Username:        req.Username,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Gender:          req.Gender,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful. A verification code has been sent to your email.",
		"user_id": user.ID,
	})
}

// VerifyRequest is the request body for POST /api/auth/verify
type VerifyRequest struct {
	UserID uint `json:"user_id"`
	Otp    int  `json:"otp"`
}

// VerifyOtp handles POST /api/auth/verify
func (s *Server) VerifyOtp(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.VerifyOtp(c.Context(), req.UserID, req.Otp)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	view, err := s.projector.UserView(c.Context(), user, user.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Account verified successfully",
		"token":   token,
		"user":    view,
	})
}

// ResendRequest is the request body for POST /api/auth/resend-otp
type ResendRequest struct {
	UserID uint `json:"user_id"`
}

// ResendOtp handles POST /api/auth/resend-otp
func (s *Server) ResendOtp(c *fiber.Ctx) error {
	var req ResendRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.authService.ResendOtp(c.Context(), req.UserID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "A new verification code has been sent to your email.",
	})
}

// LoginRequest is the request body for POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" || req.Password == "" {
		return models.RespondWithAppError(c,
			models.NewValidationError("Username and password are required"))
	}

	user, err := s.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	view, err := s.projector.UserView(c.Context(), user, user.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  view,
	})
}
