// internal/service/invitation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/email"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
)

type InviteInput struct {
	CompanyID uint   `json:"companyId" validate:"required"`
	SenderID  uint   `json:"-"`
	Email     string `json:"email" validate:"required,email"`
	Role      int    `json:"role" validate:"required"`
}

type InvitationServiceIface interface {
	Invite(ctx context.Context, input InviteInput) (*model.Invitation, error)
	Accept(ctx context.Context, invitationID uint, userID uint) error
	Decline(ctx context.Context, invitationID uint) error
	Revoke(ctx context.Context, invitationID uint) error
	ListByCompany(ctx context.Context, companyID uint) ([]model.Invitation, error)
}

type InvitationService struct {
	invitations repository.InvitationRepositoryIface
	companies   repository.CompanyRepositoryIface
	users       repository.UserRepositoryIface
	settings    SettingsServiceIface
	mailer      email.Mailer
	validate    *validator.Validate
	baseURL     string
}

func NewInvitationService(invitations repository.InvitationRepositoryIface, companies repository.CompanyRepositoryIface, users repository.UserRepositoryIface, settings SettingsServiceIface, mailer email.Mailer, baseURL string) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		companies:   companies,
		users:       users,
		settings:    settings,
		mailer:      mailer,
		validate:    validator.New(),
		baseURL:     baseURL,
	}
}

// Invite records a pending invitation and mails the recipient. The invited
// role must be assignable and the company must stay under its user ceiling.
func (s *InvitationService) Invite(ctx context.Context, input InviteInput) (*model.Invitation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !model.ParseRole(input.Role).IsAssignable() {
		return nil, domain.ErrInvalidRole
	}

	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	maxUsers, err := s.settings.GetInt(ctx, SettingMaxUsers)
	if err != nil {
		return nil, err
	}
	count, err := s.companies.CountUsers(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if count >= maxUsers {
		return nil, fmt.Errorf("company %d has %d of %d users: %w", input.CompanyID, count, maxUsers, domain.ErrLimitExceeded)
	}

	pending, err := s.invitations.PendingExists(ctx, input.CompanyID, input.Email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrInvitationHandled
	}

	invitation := &model.Invitation{
		Sender:    input.SenderID,
		CompanyID: input.CompanyID,
		Email:     input.Email,
		Role:      input.Role,
		Token:     uuid.NewString(),
		Status:    model.InvitationPending,
	}

	// An existing account gets linked immediately so teardown can find the
	// invitation through either side.
	if user, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		invitation.UserID = user.ID
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, err
	}

	inviteURL := fmt.Sprintf("%s/invitations/accept?token=%s", s.baseURL, invitation.Token)
	if err := s.mailer.SendInvitation(ctx, input.Email, company.Name, inviteURL); err != nil {
		slog.Error("Failed to send invitation email", "invitationId", invitation.ID, "error", err)
	}

	slog.Info("Created invitation", "invitationId", invitation.ID, "companyId", input.CompanyID)
	return invitation, nil
}

// Accept binds the accepting user to the company with the invited role.
func (s *InvitationService) Accept(ctx context.Context, invitationID uint, userID uint) error {
	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.Status != model.InvitationPending {
		return domain.ErrInvitationHandled
	}

	binding := &model.UserCompanyRole{
		UserID:  userID,
		Company: invitation.CompanyID,
		Role:    invitation.Role,
	}
	if err := s.companies.CreateRoleBinding(ctx, binding); err != nil {
		return err
	}
	if err := s.invitations.UpdateStatus(ctx, invitationID, model.InvitationAccepted); err != nil {
		return err
	}
	slog.Info("Accepted invitation", "invitationId", invitationID, "userId", userID)
	return nil
}

func (s *InvitationService) Decline(ctx context.Context, invitationID uint) error {
	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.Status != model.InvitationPending {
		return domain.ErrInvitationHandled
	}
	return s.invitations.UpdateStatus(ctx, invitationID, model.InvitationDeclined)
}

// Revoke withdraws a pending invitation. Handled invitations stay on record.
func (s *InvitationService) Revoke(ctx context.Context, invitationID uint) error {
	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.Status != model.InvitationPending {
		return domain.ErrInvitationHandled
	}
	if err := s.invitations.Delete(ctx, invitationID); err != nil {
		return err
	}
	slog.Info("Revoked invitation", "invitationId", invitationID)
	return nil
}

func (s *InvitationService) ListByCompany(ctx context.Context, companyID uint) ([]model.Invitation, error) {
	return s.invitations.ListByCompany(ctx, companyID)
}
