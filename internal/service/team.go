// internal/service/team.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
)

type CreateTeamInput struct {
	CompanyID uint   `json:"companyId" validate:"required"`
	CreatorID uint   `json:"-"`
	Alias     string `json:"alias" validate:"required,min=2,max=64"`
}

type TeamServiceIface interface {
	Create(ctx context.Context, input CreateTeamInput) (*model.Team, error)
	Get(ctx context.Context, teamID uint) (*model.Team, error)
	List(ctx context.Context, companyID uint) ([]model.Team, error)
	ListActive(ctx context.Context, companyID uint) ([]model.Team, error)
	SetStatus(ctx context.Context, teamID uint, active bool) error
}

type TeamService struct {
	teams    repository.TeamRepositoryIface
	settings SettingsServiceIface
	usage    repository.UsageStoreIface
	validate *validator.Validate
}

func NewTeamService(teams repository.TeamRepositoryIface, settings SettingsServiceIface, usage repository.UsageStoreIface) *TeamService {
	return &TeamService{
		teams:    teams,
		settings: settings,
		usage:    usage,
		validate: validator.New(),
	}
}

// Create adds a team after checking the alias is unique within the company
// and the company is under its team ceiling.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (*model.Team, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	taken, err := s.teams.AliasExists(ctx, input.CompanyID, input.Alias)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateAlias
	}

	maxTeams, err := s.settings.GetInt(ctx, SettingMaxTeams)
	if err != nil {
		return nil, err
	}
	count, err := s.usage.CountTeamsByCompany(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if count >= maxTeams {
		return nil, fmt.Errorf("company %d has %d of %d teams: %w", input.CompanyID, count, maxTeams, domain.ErrLimitExceeded)
	}

	team := &model.Team{
		CompanyID: input.CompanyID,
		CreatorID: input.CreatorID,
		Alias:     input.Alias,
		UUID:      uuid.NewString(),
		Active:    true,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	slog.Info("Created team", "teamId", team.ID, "companyId", input.CompanyID)
	return team, nil
}

func (s *TeamService) Get(ctx context.Context, teamID uint) (*model.Team, error) {
	return s.teams.FindByID(ctx, teamID)
}

func (s *TeamService) List(ctx context.Context, companyID uint) ([]model.Team, error) {
	return s.teams.ListByCompany(ctx, companyID)
}

func (s *TeamService) ListActive(ctx context.Context, companyID uint) ([]model.Team, error) {
	return s.teams.ListActiveByCompany(ctx, companyID)
}

// SetStatus soft-deletes or reactivates a team.
func (s *TeamService) SetStatus(ctx context.Context, teamID uint, active bool) error {
	if err := s.teams.SetActive(ctx, teamID, active); err != nil {
		return err
	}
	slog.Info("Updated team status", "teamId", teamID, "active", active)
	return nil
}
