package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned to API clients. Stable, machine-readable.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeSelfReference        = "SELF_REFERENCE"
	CodeConflict             = "CONFLICT"
	CodeNotFound             = "NOT_FOUND"
	CodeAlreadyExists        = "ALREADY_EXISTS"
	CodeEdgeNotFound         = "EDGE_NOT_FOUND"
	CodeAlreadyLiked         = "ALREADY_LIKED"
	CodeNotLiked             = "NOT_LIKED"
	CodeAlreadyVerified      = "ALREADY_VERIFIED"
	CodeNoChallenge          = "NO_CHALLENGE"
	CodeInvalidOtp           = "INVALID_OTP"
	CodeVerificationRequired = "VERIFICATION_REQUIRED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeDependency           = "DEPENDENCY_ERROR"
	CodeInternal             = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewSelfReferenceError(message string) *AppError {
	return &AppError{
		Code:    CodeSelfReference,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewAlreadyExistsError(message string) *AppError {
	return &AppError{
		Code:    CodeAlreadyExists,
		Message: message,
	}
}

func NewEdgeNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeEdgeNotFound,
		Message: message,
	}
}

func NewAlreadyLikedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyLiked,
		Message: "Post already liked",
	}
}

func NewNotLikedError() *AppError {
	return &AppError{
		Code:    CodeNotLiked,
		Message: "Post was not liked",
	}
}

func NewAlreadyVerifiedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyVerified,
		Message: "Account is already verified",
	}
}

func NewNoChallengeError() *AppError {
	return &AppError{
		Code:    CodeNoChallenge,
		Message: "No OTP found. Please request a new OTP.",
	}
}

func NewInvalidOtpError() *AppError {
	return &AppError{
		Code:    CodeInvalidOtp,
		Message: "Invalid OTP. Please check and try again.",
	}
}

func NewVerificationRequiredError() *AppError {
	return &AppError{
		Code:    CodeVerificationRequired,
		Message: "Account not verified. A new OTP has been sent to your email.",
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewDependencyError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeDependency,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusForCode maps an error code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeValidation, CodeSelfReference, CodeAlreadyLiked, CodeNotLiked, CodeAlreadyVerified,
		CodeNoChallenge, CodeInvalidOtp, CodeVerificationRequired, CodeEdgeNotFound:
		return fiber.StatusBadRequest
	case CodeConflict, CodeAlreadyExists:
		return fiber.StatusConflict
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeDependency:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response. Internal error
// details (driver errors, wrapped causes) are never serialized to clients.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
	} else {
		response = ErrorResponse{
			Error: "Internal server error",
			Code:  CodeInternal,
		}
	}

	return c.Status(status).JSON(response)
}

// RespondWithAppError picks the HTTP status from the error code.
func RespondWithAppError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*AppError); ok {
		return RespondWithError(c, StatusForCode(appErr.Code), appErr)
	}
	return RespondWithError(c, fiber.StatusInternalServerError, err)
}
