// internal/repository/company.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
)

// CompanyRepositoryIface covers company rows, the companies_meta bag and the
// user/company role bindings, including the role resolver every gate depends
// on.
type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uint) (*model.Company, error)
	Exists(ctx context.Context, id uint) (bool, error)

	GetCompanyRoleForUser(ctx context.Context, userID, companyID uint) (model.Role, error)
	GetCompanyIDForUser(ctx context.Context, userID uint) (uint, error)
	RoleBindingsByCompany(ctx context.Context, companyID uint) ([]model.UserCompanyRole, error)
	CreateRoleBinding(ctx context.Context, binding *model.UserCompanyRole) error
	CountUsers(ctx context.Context, companyID uint) (int64, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking company existence: %w", err)
	}
	return count > 0, nil
}

// GetCompanyRoleForUser resolves the caller's role within a company.
// A missing binding row resolves to model.RoleNone, never an error: callers
// branch on the sentinel explicitly.
func (r *CompanyRepository) GetCompanyRoleForUser(ctx context.Context, userID, companyID uint) (model.Role, error) {
	var binding model.UserCompanyRole
	err := r.db.WithContext(ctx).
		Where("userId = ? AND company = ?", userID, companyID).
		First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RoleNone, nil
		}
		return model.RoleNone, fmt.Errorf("resolving company role: %w", err)
	}
	return model.ParseRole(binding.Role), nil
}

func (r *CompanyRepository) GetCompanyIDForUser(ctx context.Context, userID uint) (uint, error) {
	var binding model.UserCompanyRole
	err := r.db.WithContext(ctx).
		Where("userId = ?", userID).
		First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNoRole
		}
		return 0, fmt.Errorf("resolving company for user: %w", err)
	}
	return binding.Company, nil
}

func (r *CompanyRepository) RoleBindingsByCompany(ctx context.Context, companyID uint) ([]model.UserCompanyRole, error) {
	var bindings []model.UserCompanyRole
	err := r.db.WithContext(ctx).
		Where("company = ?", companyID).
		Find(&bindings).Error
	if err != nil {
		return nil, fmt.Errorf("finding role bindings: %w", err)
	}
	return bindings, nil
}

func (r *CompanyRepository) CreateRoleBinding(ctx context.Context, binding *model.UserCompanyRole) error {
	if err := r.db.WithContext(ctx).Create(binding).Error; err != nil {
		return fmt.Errorf("creating role binding: %w", err)
	}
	return nil
}

func (r *CompanyRepository) CountUsers(ctx context.Context, companyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserCompanyRole{}).
		Where("company = ?", companyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting company users: %w", err)
	}
	return count, nil
}
