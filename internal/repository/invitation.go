// internal/repository/invitation.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
)

type InvitationRepositoryIface interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id uint) (*model.Invitation, error)
	FindByToken(ctx context.Context, token string) (*model.Invitation, error)
	UpdateStatus(ctx context.Context, id uint, status model.InvitationStatus) error
	Delete(ctx context.Context, id uint) error
	ListByCompany(ctx context.Context, companyID uint) ([]model.Invitation, error)
	PendingExists(ctx context.Context, companyID uint, email string) (bool, error)
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uint) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).First(&invitation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).First(&invitation, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation by token: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) UpdateStatus(ctx context.Context, id uint, status model.InvitationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating invitation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *InvitationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Invitation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting invitation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *InvitationRepository) ListByCompany(ctx context.Context, companyID uint) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := r.db.WithContext(ctx).Where("companyId = ?", companyID).Find(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invitations, nil
}

func (r *InvitationRepository) PendingExists(ctx context.Context, companyID uint, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("companyId = ? AND email = ? AND status = ?", companyID, email, model.InvitationPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking pending invitation: %w", err)
	}
	return count > 0, nil
}
