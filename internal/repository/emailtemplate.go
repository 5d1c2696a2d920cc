// internal/repository/emailtemplate.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
)

type EmailTemplateRepositoryIface interface {
	List(ctx context.Context) ([]model.EmailTemplate, error)
	FindByID(ctx context.Context, id uint) (*model.EmailTemplate, error)
	FindByName(ctx context.Context, name string) (*model.EmailTemplate, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Create(ctx context.Context, template *model.EmailTemplate) error
}

type EmailTemplateRepository struct {
	db *gorm.DB
}

func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

func (r *EmailTemplateRepository) List(ctx context.Context) ([]model.EmailTemplate, error) {
	var templates []model.EmailTemplate
	if err := r.db.WithContext(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("listing email templates: %w", err)
	}
	return templates, nil
}

func (r *EmailTemplateRepository) FindByID(ctx context.Context, id uint) (*model.EmailTemplate, error) {
	var template model.EmailTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("finding email template: %w", err)
	}
	return &template, nil
}

func (r *EmailTemplateRepository) FindByName(ctx context.Context, name string) (*model.EmailTemplate, error) {
	var template model.EmailTemplate
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("finding email template: %w", err)
	}
	return &template, nil
}

// Update writes only the supplied columns. Callers validate that fields is
// non-empty before reaching here.
func (r *EmailTemplateRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&model.EmailTemplate{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("updating email template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *EmailTemplateRepository) Create(ctx context.Context, template *model.EmailTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("creating email template: %w", err)
	}
	return nil
}
