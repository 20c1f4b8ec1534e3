package repository

import (
	"context"
	"errors"

	"linkup/internal/cache"
	"linkup/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByMobile(ctx context.Context, mobile string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetOtp(ctx context.Context, id uint, code int) error
	MarkVerified(ctx context.Context, id uint) error
	ListVerifiedExcluding(ctx context.Context, excludeIDs []uint, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// cachedUser carries the fields hidden from API JSON (`json:"-"`) alongside
// the user so they survive the marshal round-trip through Redis.
type cachedUser struct {
	User     models.User `json:"user"`
	Password string      `json:"password"`
	OTP      *int        `json:"otp"`
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var rec cachedUser
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &rec, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&rec.User, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		rec.Password = rec.User.Password
		rec.OTP = rec.User.OTP
		return nil
	})

	if err != nil {
		return nil, err
	}

	user := rec.User
	user.Password = rec.Password
	user.OTP = rec.OTP
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) existsWhere(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsWhere(ctx, "email = ?", email)
}

func (r *userRepository) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	return r.existsWhere(ctx, "mobile = ?", mobile)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.existsWhere(ctx, "username = ?", username)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Account already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Account already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// SetOtp overwrites the outstanding code; any previous code is invalidated
// by the same write.
func (r *userRepository) SetOtp(ctx context.Context, id uint, code int) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("otp", code)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// MarkVerified flips the account to verified and clears the outstanding OTP
// in one UPDATE, so no partially-transitioned state is ever persisted.
func (r *userRepository) MarkVerified(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"verified": true, "otp": nil})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) ListVerifiedExcluding(ctx context.Context, excludeIDs []uint, limit int) ([]models.User, error) {
	var users []models.User
	q := r.db.WithContext(ctx).Where("verified = ?", true)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if err := q.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
