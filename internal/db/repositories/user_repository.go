package repositories

import (
	"context"
	"strings"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user; a duplicate email becomes a ConstraintError on "email"
func (r *UserRepository) Create(ctx context.Context, user *gormModels.User) error {
	err := r.db.WithContext(ctx).Omit("Orders").Create(user).Error
	if db.IsUniqueViolation(err) {
		return common.NewConstraintError("email", constants.MsgEmailTaken)
	}
	return err
}

// FindByEmail matches case-insensitively; emails are stored lower-cased
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, "user", email)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*gormModels.User, error) {
	var user gormModels.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}
