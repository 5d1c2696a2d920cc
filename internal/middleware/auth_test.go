package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/auth"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/middleware"
	"github.com/teamdock/teamdock/internal/mocks"
	"github.com/teamdock/teamdock/internal/model"
	"go.uber.org/mock/gomock"
)

const testSecret = "unit-test-secret"

type gatekeeperFixture struct {
	gate        *middleware.Gatekeeper
	tokens      *auth.TokenManager
	users       *mocks.MockUserRepositoryIface
	companies   *mocks.MockCompanyRepositoryIface
	teams       *mocks.MockTeamRepositoryIface
	invitations *mocks.MockInvitationRepositoryIface
}

func newGatekeeper(t *testing.T) *gatekeeperFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &gatekeeperFixture{
		tokens:      auth.NewTokenManager(testSecret, time.Hour),
		users:       mocks.NewMockUserRepositoryIface(ctrl),
		companies:   mocks.NewMockCompanyRepositoryIface(ctrl),
		teams:       mocks.NewMockTeamRepositoryIface(ctrl),
		invitations: mocks.NewMockInvitationRepositoryIface(ctrl),
	}
	f.gate = middleware.NewGatekeeper(f.tokens, f.users, f.companies, f.teams, f.invitations)
	return f
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (f *gatekeeperFixture) bearer(t *testing.T, userID, companyID uint, email string) string {
	token, err := f.tokens.Generate(userID, companyID, email)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	f := newGatekeeper(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing authorization token", body["message"])
}

func TestVerifyTokenExpired(t *testing.T) {
	f := newGatekeeper(t)

	// A manager with a negative period mints tokens that are already expired.
	expired := auth.NewTokenManager(testSecret, -time.Minute)
	token, err := expired.Generate(7, 2, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expired", decodeError(t, rec)["message"])
}

func TestVerifyTokenWrongSignature(t *testing.T) {
	f := newGatekeeper(t)

	other := auth.NewTokenManager("some-other-secret", time.Hour)
	token, err := other.Generate(7, 2, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeError(t, rec)["message"])
}

func TestVerifyTokenStoresClaims(t *testing.T) {
	f := newGatekeeper(t)

	var got *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = middleware.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, uint(2), got.Company)
	assert.Equal(t, "user@example.com", got.Email)
}

func TestSuperAdminAccess(t *testing.T) {
	tests := []struct {
		name     string
		role     model.Role
		wantCode int
	}{
		{name: "super admin passes", role: model.RoleSuperAdmin, wantCode: http.StatusOK},
		{name: "admin is rejected", role: model.RoleAdmin, wantCode: http.StatusUnauthorized},
		{name: "member is rejected", role: model.RoleMember, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGatekeeper(t)
			f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(tt.role, nil)

			req := httptest.NewRequest(http.MethodGet, "/super-admin/settings", nil)
			req.Header.Set("Authorization", f.bearer(t, 7, 2, "admin@example.com"))
			rec := httptest.NewRecorder()
			f.gate.VerifyToken(f.gate.SuperAdminAccess(okHandler())).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				body := decodeError(t, rec)
				assert.Equal(t, "forbidden", body["error"])
				assert.Equal(t, "Access denied", body["message"])
			}
		})
	}
}

func TestIsCompanyUserMemberPasses(t *testing.T) {
	f := newGatekeeper(t)
	f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleRestricted, nil)

	req := httptest.NewRequest(http.MethodGet, "/teams?companyId=2", nil)
	req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(f.gate.IsCompanyUser(okHandler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIsCompanyUserSuperAdminCrossCompany(t *testing.T) {
	f := newGatekeeper(t)
	// No binding on the requested company, but super admin on their own.
	f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(9)).Return(model.RoleNone, nil)
	f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleSuperAdmin, nil)

	req := httptest.NewRequest(http.MethodGet, "/teams?companyId=9", nil)
	req.Header.Set("Authorization", f.bearer(t, 7, 2, "root@example.com"))
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(f.gate.IsCompanyUser(okHandler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIsCompanyUserOutsiderRejected(t *testing.T) {
	f := newGatekeeper(t)
	f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(9)).Return(model.RoleNone, nil)
	f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleMember, nil)

	req := httptest.NewRequest(http.MethodGet, "/teams?companyId=9", nil)
	req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(f.gate.IsCompanyUser(okHandler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// teamRequest routes through chi so the teamId URL param resolves.
func teamRequest(t *testing.T, f *gatekeeperFixture, gate func(http.Handler) http.Handler, teamID, bearer string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.With(f.gate.VerifyToken, gate).Get("/teams/{teamId}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID, nil)
	req.Header.Set("Authorization", bearer)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIsMemberOfTeam(t *testing.T) {
	t.Run("company member passes", func(t *testing.T) {
		f := newGatekeeper(t)
		f.teams.EXPECT().CompanyIDForTeam(gomock.Any(), uint(5)).Return(uint(2), nil)
		f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleMember, nil)

		rec := teamRequest(t, f, f.gate.IsMemberOfTeam, "5", f.bearer(t, 7, 2, "user@example.com"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("outsider rejected", func(t *testing.T) {
		f := newGatekeeper(t)
		f.teams.EXPECT().CompanyIDForTeam(gomock.Any(), uint(5)).Return(uint(2), nil)
		f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleNone, nil)

		rec := teamRequest(t, f, f.gate.IsMemberOfTeam, "5", f.bearer(t, 7, 99, "user@example.com"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown team", func(t *testing.T) {
		f := newGatekeeper(t)
		f.teams.EXPECT().CompanyIDForTeam(gomock.Any(), uint(5)).Return(uint(0), domain.ErrTeamNotFound)

		rec := teamRequest(t, f, f.gate.IsMemberOfTeam, "5", f.bearer(t, 7, 2, "user@example.com"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Team not found", body["message"])
	})
}

func TestIsMemberOfTeamOrSharedMember(t *testing.T) {
	t.Run("shared grant passes when no role resolves", func(t *testing.T) {
		f := newGatekeeper(t)
		f.teams.EXPECT().CompanyIDForTeam(gomock.Any(), uint(5)).Return(uint(2), nil)
		f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleNone, nil)
		f.teams.EXPECT().IsSharedWithEmail(gomock.Any(), uint(5), "guest@example.com").Return(true, nil)

		rec := teamRequest(t, f, f.gate.IsMemberOfTeamOrSharedMember, "5", f.bearer(t, 7, 99, "guest@example.com"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no role and no grant is rejected", func(t *testing.T) {
		f := newGatekeeper(t)
		f.teams.EXPECT().CompanyIDForTeam(gomock.Any(), uint(5)).Return(uint(2), nil)
		f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleNone, nil)
		f.teams.EXPECT().IsSharedWithEmail(gomock.Any(), uint(5), "guest@example.com").Return(false, nil)

		rec := teamRequest(t, f, f.gate.IsMemberOfTeamOrSharedMember, "5", f.bearer(t, 7, 99, "guest@example.com"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("company member never consults the grant table", func(t *testing.T) {
		f := newGatekeeper(t)
		f.teams.EXPECT().CompanyIDForTeam(gomock.Any(), uint(5)).Return(uint(2), nil)
		f.companies.EXPECT().GetCompanyRoleForUser(gomock.Any(), uint(7), uint(2)).Return(model.RoleAdmin, nil)

		rec := teamRequest(t, f, f.gate.IsMemberOfTeamOrSharedMember, "5", f.bearer(t, 7, 2, "user@example.com"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCompanyExistsLegacyStatus(t *testing.T) {
	f := newGatekeeper(t)
	f.companies.EXPECT().Exists(gomock.Any(), uint(44)).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/companies?companyId=44", nil)
	rec := httptest.NewRecorder()
	f.gate.CompanyExists(okHandler()).ServeHTTP(rec, req)

	// The missing-company reply is a 401 carrying the bad_request kind.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "bad_request", body["error"])
	assert.Equal(t, "Company not found", body["message"])
}

func TestCompanyExistsFallsBackToClaims(t *testing.T) {
	f := newGatekeeper(t)
	f.companies.EXPECT().Exists(gomock.Any(), uint(2)).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(`{"email":"new@example.com","role":2}`))
	req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(f.gate.CompanyExists(okHandler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserExistsFallsBackToClaims(t *testing.T) {
	f := newGatekeeper(t)
	f.users.EXPECT().Exists(gomock.Any(), uint(7)).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/user/delete-profile", strings.NewReader(`{}`))
	req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
	rec := httptest.NewRecorder()
	f.gate.VerifyToken(f.gate.UserExists(okHandler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "member role passes", body: `{"role": 2}`, wantCode: http.StatusOK},
		{name: "numeric string passes", body: `{"role": "1"}`, wantCode: http.StatusOK},
		{name: "super admin is not assignable", body: `{"role": 4}`, wantCode: http.StatusBadRequest},
		{name: "unknown role code", body: `{"role": 42}`, wantCode: http.StatusBadRequest},
		{name: "role missing", body: `{}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGatekeeper(t)

			req := httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			f.gate.IsValidRole(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestIsValidRoleBodySurvivesPeek(t *testing.T) {
	f := newGatekeeper(t)

	var decoded map[string]any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decoded))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(`{"role": 2, "email": "new@example.com"}`))
	rec := httptest.NewRecorder()
	f.gate.IsValidRole(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new@example.com", decoded["email"])
}

func TestIsValidFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "pdf passes", body: `{"fileType": "pdf"}`, wantCode: http.StatusOK},
		{name: "uppercase passes", body: `{"fileType": "DOCX"}`, wantCode: http.StatusOK},
		{name: "executable rejected", body: `{"fileType": "exe"}`, wantCode: http.StatusUnauthorized},
		{name: "missing type rejected", body: `{}`, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGatekeeper(t)

			req := httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			f.gate.IsValidFileExtension(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestIsSenderOwner(t *testing.T) {
	t.Run("sender passes", func(t *testing.T) {
		f := newGatekeeper(t)
		f.invitations.EXPECT().FindByID(gomock.Any(), uint(3)).
			Return(&model.Invitation{ID: 3, Sender: 7}, nil)

		r := chi.NewRouter()
		r.With(f.gate.VerifyToken, f.gate.IsSenderOwner).Patch("/invitations/{invitationId}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPatch, "/invitations/3", nil)
		req.Header.Set("Authorization", f.bearer(t, 7, 2, "admin@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-sender rejected", func(t *testing.T) {
		f := newGatekeeper(t)
		f.invitations.EXPECT().FindByID(gomock.Any(), uint(3)).
			Return(&model.Invitation{ID: 3, Sender: 99}, nil)

		r := chi.NewRouter()
		r.With(f.gate.VerifyToken, f.gate.IsSenderOwner).Patch("/invitations/{invitationId}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPatch, "/invitations/3", nil)
		req.Header.Set("Authorization", f.bearer(t, 7, 2, "admin@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestIsAccountVerified(t *testing.T) {
	t.Run("verified passes", func(t *testing.T) {
		f := newGatekeeper(t)
		f.users.EXPECT().FindByID(gomock.Any(), uint(7)).
			Return(&model.User{ID: 7, Status: model.StatusVerified}, nil)

		req := httptest.NewRequest(http.MethodGet, "/teams", nil)
		req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
		rec := httptest.NewRecorder()
		f.gate.VerifyToken(f.gate.IsAccountVerified(okHandler())).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unverified rejected", func(t *testing.T) {
		f := newGatekeeper(t)
		f.users.EXPECT().FindByID(gomock.Any(), uint(7)).
			Return(&model.User{ID: 7, Status: model.StatusUnverified}, nil)

		req := httptest.NewRequest(http.MethodGet, "/teams", nil)
		req.Header.Set("Authorization", f.bearer(t, 7, 2, "user@example.com"))
		rec := httptest.NewRecorder()
		f.gate.VerifyToken(f.gate.IsAccountVerified(okHandler())).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
