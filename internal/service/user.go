// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teamdock/teamdock/internal/auth"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/email"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
)

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstname" validate:"required"`
	LastName    string `json:"lastname"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"companyName"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type UserServiceIface interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	VerifyAccount(ctx context.Context, email, code string) error
	Profile(ctx context.Context, userID uint) (*model.User, error)
}

type UserService struct {
	users     repository.UserRepositoryIface
	companies repository.CompanyRepositoryIface
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenManager
	mailer    email.Mailer
	validate  *validator.Validate
	baseURL   string
}

func NewUserService(users repository.UserRepositoryIface, companies repository.CompanyRepositoryIface, hasher *auth.PasswordHasher, tokens *auth.TokenManager, mailer email.Mailer, baseURL string) *UserService {
	return &UserService{
		users:     users,
		companies: companies,
		hasher:    hasher,
		tokens:    tokens,
		mailer:    mailer,
		validate:  validator.New(),
		baseURL:   baseURL,
	}
}

// defaultMetaRows are created for every new account so readers never have to
// special-case a missing row for these keys.
func defaultMetaRows() map[model.MetaKey]string {
	return map[model.MetaKey]string{
		model.MetaQueries:           "0",
		model.MetaAccountLockStatus: "unlocked",
		model.MetaAccountBlocked:    "false",
		model.MetaTwoFactor:         "disabled",
		model.MetaAvatarURL:         "default_avatar.png",
		model.MetaAccountType:       "standard",
		model.MetaSignUpMethod:      "email",
		model.MetaCloudIntegration:  "false",
		model.MetaGoogleDrive:       "false",
		model.MetaDropbox:           "false",
		model.MetaOneDrive:          "false",
		model.MetaSlack:             "false",
		model.MetaWordpress:         "false",
	}
}

// Register creates the user, their default meta rows, a personal company with
// an admin role binding, and sends the verification email. The account stays
// unverified until the emailed code is redeemed.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  hash,
		Status:    model.StatusUnverified,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	for key, value := range defaultMetaRows() {
		if err := s.users.AddMeta(ctx, user.ID, key, value); err != nil {
			return nil, err
		}
	}

	companyName := input.CompanyName
	if companyName == "" {
		companyName = input.FirstName + "'s workspace"
	}
	company := &model.Company{Name: companyName, AdminID: user.ID}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	binding := &model.UserCompanyRole{UserID: user.ID, Company: company.ID, Role: int(model.RoleAdmin)}
	if err := s.companies.CreateRoleBinding(ctx, binding); err != nil {
		return nil, err
	}

	code := uuid.NewString()
	if err := s.users.AddMeta(ctx, user.ID, model.MetaVerifyToken, code); err != nil {
		return nil, err
	}
	verifyURL := fmt.Sprintf("%s/auth/verify-account?email=%s&code=%s", s.baseURL, user.Email, code)
	if err := s.mailer.SendVerification(ctx, user.Email, user.FirstName, verifyURL); err != nil {
		// The account is usable once verified through support; don't fail
		// the signup over a mail outage.
		slog.Error("Failed to send verification email", "userId", user.ID, "error", err)
	}

	slog.Info("Registered user", "userId", user.ID, "companyId", company.ID)
	return user, nil
}

// Login checks the password and issues a JWT bound to the user's company.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(input.Password, user.Password)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	companyID, err := s.companies.GetCompanyIDForUser(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNoRole) {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, companyID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

// VerifyAccount redeems the emailed code and flips the account to verified.
func (s *UserService) VerifyAccount(ctx context.Context, emailAddr, code string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user.Status == model.StatusVerified {
		return domain.ErrAlreadyVerified
	}

	stored, err := s.users.MetaValue(ctx, user.ID, model.MetaVerifyToken)
	if err != nil {
		return err
	}
	if stored == "" || stored != code {
		return domain.ErrInvalidVerifyCode
	}

	user.Status = model.StatusVerified
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if err := s.users.SetMeta(ctx, user.ID, model.MetaVerifyToken, ""); err != nil {
		return err
	}
	slog.Info("Verified account", "userId", user.ID)
	return nil
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}
