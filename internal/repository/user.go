// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Exists(ctx context.Context, id uint) (bool, error)

	MetaValue(ctx context.Context, userID uint, key model.MetaKey) (string, error)
	MetaExists(ctx context.Context, userID uint, key model.MetaKey) (bool, error)
	AddMeta(ctx context.Context, userID uint, key model.MetaKey, value string) error
	SetMeta(ctx context.Context, userID uint, key model.MetaKey, value string) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check user existence: %w", result.Error)
	}
	return count > 0, nil
}

// MetaValue returns the stored value for (userID, key), or the empty string
// when no row exists. Absence is not an error.
func (r *UserRepository) MetaValue(ctx context.Context, userID uint, key model.MetaKey) (string, error) {
	var meta model.UserMeta
	result := r.db.WithContext(ctx).
		Where("userId = ? AND metaKey = ?", userID, key).
		First(&meta)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read user meta: %w", result.Error)
	}
	return meta.MetaValue, nil
}

func (r *UserRepository) MetaExists(ctx context.Context, userID uint, key model.MetaKey) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserMeta{}).
		Where("userId = ? AND metaKey = ?", userID, key).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check user meta: %w", result.Error)
	}
	return count > 0, nil
}

func (r *UserRepository) AddMeta(ctx context.Context, userID uint, key model.MetaKey, value string) error {
	meta := model.UserMeta{UserID: userID, MetaKey: key, MetaValue: value}
	if err := r.db.WithContext(ctx).Create(&meta).Error; err != nil {
		return fmt.Errorf("failed to add user meta: %w", err)
	}
	return nil
}

// SetMeta upserts the (userID, key) row.
func (r *UserRepository) SetMeta(ctx context.Context, userID uint, key model.MetaKey, value string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "userId"}, {Name: "metaKey"}},
		DoUpdates: clause.AssignmentColumns([]string{"metaValue"}),
	}).Create(&model.UserMeta{UserID: userID, MetaKey: key, MetaValue: value}).Error
	if err != nil {
		return fmt.Errorf("failed to set user meta: %w", err)
	}
	return nil
}
