// internal/repository/settings.go
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

type SettingsRepositoryIface interface {
	Get(ctx context.Context, name string) (string, error)
	All(ctx context.Context) ([]model.AdminSetting, error)
	Set(ctx context.Context, name, value string) error
}

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, name string) (string, error) {
	var setting model.AdminSetting
	if err := r.db.WithContext(ctx).First(&setting, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrSettingNotFound
		}
		return "", fmt.Errorf("reading setting: %w", err)
	}
	return setting.Value, nil
}

func (r *SettingsRepository) All(ctx context.Context) ([]model.AdminSetting, error) {
	var settings []model.AdminSetting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepository) Set(ctx context.Context, name, value string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&model.AdminSetting{Name: name, Value: value}).Error
	if err != nil {
		return fmt.Errorf("writing setting: %w", err)
	}
	return nil
}
