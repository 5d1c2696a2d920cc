// internal/repository/team.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
)

type TeamRepositoryIface interface {
	Create(ctx context.Context, team *model.Team) error
	FindByID(ctx context.Context, id uint) (*model.Team, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CompanyIDForTeam(ctx context.Context, teamID uint) (uint, error)
	ListByCompany(ctx context.Context, companyID uint) ([]model.Team, error)
	ListActiveByCompany(ctx context.Context, companyID uint) ([]model.Team, error)
	AliasExists(ctx context.Context, companyID uint, alias string) (bool, error)
	SetActive(ctx context.Context, teamID uint, active bool) error
	IsSharedWithEmail(ctx context.Context, teamID uint, email string) (bool, error)
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return fmt.Errorf("creating team: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("finding team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Team{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking team existence: %w", err)
	}
	return count > 0, nil
}

func (r *TeamRepository) CompanyIDForTeam(ctx context.Context, teamID uint) (uint, error) {
	var team model.Team
	err := r.db.WithContext(ctx).Select("companyId").First(&team, "id = ?", teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrTeamNotFound
		}
		return 0, fmt.Errorf("resolving company for team: %w", err)
	}
	return team.CompanyID, nil
}

func (r *TeamRepository) ListByCompany(ctx context.Context, companyID uint) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Where("companyId = ?", companyID).Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) ListActiveByCompany(ctx context.Context, companyID uint) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Where("companyId = ? AND active = ?", companyID, true).
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("listing active teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) AliasExists(ctx context.Context, companyID uint, alias string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Team{}).
		Where("companyId = ? AND alias = ?", companyID, alias).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking team alias: %w", err)
	}
	return count > 0, nil
}

// SetActive soft-deletes or reactivates a team. Teams are never hard-deleted
// outside company teardown.
func (r *TeamRepository) SetActive(ctx context.Context, teamID uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&model.Team{}).
		Where("id = ?", teamID).
		Update("active", active)
	if result.Error != nil {
		return fmt.Errorf("updating team status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) IsSharedWithEmail(ctx context.Context, teamID uint, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SharedTeam{}).
		Where("teamId = ? AND sharedUserEmail = ?", teamID, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking shared team grant: %w", err)
	}
	return count > 0, nil
}
