package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/auth"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/email"
	"github.com/teamdock/teamdock/internal/mocks"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/service"
	"go.uber.org/mock/gomock"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUserRepositoryIface, *mocks.MockCompanyRepositoryIface, *auth.TokenManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepositoryIface(ctrl)
	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	tokens := auth.NewTokenManager("user-service-test", time.Hour)
	svc := service.NewUserService(users, companies, auth.NewPasswordHasher(), tokens, email.NoopMailer{}, "https://app.example.com")
	return svc, users, companies, tokens
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newUserService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
		Return(&model.User{ID: 3, Email: "taken@example.com"}, nil)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:     "taken@example.com",
		FirstName: "Dana",
		Password:  "long enough password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:     "new@example.com",
		FirstName: "Dana",
		Password:  "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterCreatesPersonalCompany(t *testing.T) {
	svc, users, companies, _ := newUserService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "new@example.com").
		Return(nil, domain.ErrUserNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *model.User) error {
			user.ID = 7
			assert.Equal(t, model.StatusUnverified, user.Status)
			assert.NotEqual(t, "long enough password", user.Password)
			return nil
		})
	users.EXPECT().AddMeta(gomock.Any(), uint(7), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	companies.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, company *model.Company) error {
			company.ID = 2
			assert.Equal(t, "Dana's workspace", company.Name)
			assert.Equal(t, uint(7), company.AdminID)
			return nil
		})
	companies.EXPECT().CreateRoleBinding(gomock.Any(), &model.UserCompanyRole{
		UserID: 7, Company: 2, Role: int(model.RoleAdmin),
	}).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:     "new@example.com",
		FirstName: "Dana",
		Password:  "long enough password",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _, _ := newUserService(t)

	hash, err := auth.NewPasswordHasher().Hash("the real password")
	require.NoError(t, err)
	users.EXPECT().FindByEmail(gomock.Any(), "user@example.com").
		Return(&model.User{ID: 7, Email: "user@example.com", Password: hash}, nil)

	_, err = svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "not the password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIsCredentialsError(t *testing.T) {
	svc, users, _, _ := newUserService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever it was",
	})
	// The reply must not reveal whether the account exists.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginIssuesCompanyBoundToken(t *testing.T) {
	svc, users, companies, tokens := newUserService(t)

	hash, err := auth.NewPasswordHasher().Hash("the real password")
	require.NoError(t, err)
	users.EXPECT().FindByEmail(gomock.Any(), "user@example.com").
		Return(&model.User{ID: 7, Email: "user@example.com", Password: hash}, nil)
	companies.EXPECT().GetCompanyIDForUser(gomock.Any(), uint(7)).Return(uint(2), nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "the real password",
	})
	require.NoError(t, err)

	claims, err := tokens.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, uint(2), claims.Company)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestVerifyAccountWrongCode(t *testing.T) {
	svc, users, _, _ := newUserService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "user@example.com").
		Return(&model.User{ID: 7, Email: "user@example.com", Status: model.StatusUnverified}, nil)
	users.EXPECT().MetaValue(gomock.Any(), uint(7), model.MetaVerifyToken).
		Return("the-issued-code", nil)

	err := svc.VerifyAccount(context.Background(), "user@example.com", "a-guessed-code")
	assert.ErrorIs(t, err, domain.ErrInvalidVerifyCode)
}

func TestVerifyAccountAlreadyVerified(t *testing.T) {
	svc, users, _, _ := newUserService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "user@example.com").
		Return(&model.User{ID: 7, Status: model.StatusVerified}, nil)

	err := svc.VerifyAccount(context.Background(), "user@example.com", "any-code")
	assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
}

func TestVerifyAccountFlipsStatusAndClearsCode(t *testing.T) {
	svc, users, _, _ := newUserService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "user@example.com").
		Return(&model.User{ID: 7, Email: "user@example.com", Status: model.StatusUnverified}, nil)
	users.EXPECT().MetaValue(gomock.Any(), uint(7), model.MetaVerifyToken).
		Return("the-issued-code", nil)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *model.User) error {
			assert.Equal(t, model.StatusVerified, user.Status)
			return nil
		})
	users.EXPECT().SetMeta(gomock.Any(), uint(7), model.MetaVerifyToken, "").Return(nil)

	err := svc.VerifyAccount(context.Background(), "user@example.com", "the-issued-code")
	assert.NoError(t, err)
}
