// Package service contains the application's business logic.
package service

import (
	"context"
	"log/slog"

	"linkup/internal/mailer"
	"linkup/internal/models"
	"linkup/internal/observability"
	"linkup/internal/otp"
	"linkup/internal/repository"
	"linkup/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService drives registration, OTP verification, and login.
//
// Account states: Registered (unverified, OTP outstanding) and Verified
// (terminal). Every OTP write persists before dispatch, and dispatch is
// best-effort in all paths: the stored code is authoritative and can always
// be resent, so a mail failure never rolls back account state.
type AuthService struct {
	userRepo repository.UserRepository
	mailer   mailer.Mailer
	otpSrc   otp.Source
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, m mailer.Mailer, otpSrc otp.Source) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   m,
		otpSrc:   otpSrc,
	}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Firstname       string
	Lastname        string
	Username        string
	Email           string
	Mobile          string
	Gender          string
	Password        string
	ConfirmPassword string
}

// Register creates a new account in the Registered state with a fresh OTP.
// Uniqueness is checked in order: email, mobile, username; the first
// failing check wins.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, models.NewValidationError("Passwords do not match")
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if exists, err := s.userRepo.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, models.NewConflictError("Email already exists")
	}
	if exists, err := s.userRepo.ExistsByMobile(ctx, in.Mobile); err != nil {
		return nil, err
	} else if exists {
		return nil, models.NewConflictError("Mobile number already exists")
	}
	if exists, err := s.userRepo.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, models.NewConflictError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	code, err := s.otpSrc.Generate()
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Username:  in.Username,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Gender:    in.Gender,
		Password:  string(hashed),
		OTP:       &code,
		Verified:  false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.dispatchOtp(ctx, user, code)

	return user, nil
}

// VerifyOtp transitions a Registered account to Verified. The stored OTP is
// cleared in the same update that sets the verified flag.
func (s *AuthService) VerifyOtp(ctx context.Context, accountID uint, code int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if user.OTP == nil {
		return nil, models.NewNoChallengeError()
	}
	if *user.OTP != code {
		return nil, models.NewInvalidOtpError()
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	user.Verified = true
	user.OTP = nil
	return user, nil
}

// ResendOtp overwrites any outstanding code with a fresh one. The new code is
// persisted before dispatch so the stored code always matches the last send
// attempt.
func (s *AuthService) ResendOtp(ctx context.Context, accountID uint) error {
	user, err := s.userRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if user.Verified {
		return models.NewAlreadyVerifiedError()
	}

	code, err := s.otpSrc.Generate()
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := s.userRepo.SetOtp(ctx, user.ID, code); err != nil {
		return err
	}

	s.dispatchOtp(ctx, user, code)
	return nil
}

// Login authenticates by username and password. An unverified account with
// valid credentials gets a fresh OTP and a VerificationRequired error rather
// than an authentication failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid username or password")
	}

	if !user.Verified {
		code, genErr := s.otpSrc.Generate()
		if genErr != nil {
			return nil, models.NewInternalError(genErr)
		}
		if setErr := s.userRepo.SetOtp(ctx, user.ID, code); setErr != nil {
			return nil, setErr
		}
		s.dispatchOtp(ctx, user, code)
		return nil, models.NewVerificationRequiredError()
	}

	return user, nil
}

// dispatchOtp sends the code best-effort: failures are logged and counted,
// never propagated, since the persisted code can be resent.
func (s *AuthService) dispatchOtp(ctx context.Context, user *models.User, code int) {
	if err := s.mailer.SendOtp(ctx, user.Email, code, user.Firstname); err != nil {
		observability.OtpDispatches.WithLabelValues("failure").Inc()
		observability.Logger.WarnContext(ctx, "OTP dispatch failed",
			slog.Uint64("user_id", uint64(user.ID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.OtpDispatches.WithLabelValues("success").Inc()
}
