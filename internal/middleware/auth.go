// internal/middleware/auth.go
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/teamdock/teamdock/internal/auth"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/serializer"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFromContext returns the identity VerifyToken stored. The second
// return is false on routes that never passed through VerifyToken.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// Gatekeeper holds every authorization gate. Each gate is a chi middleware
// that either calls the next handler or writes the terminal error; no gate
// does both. Routes compose gates in order: token verification first, then
// existence checks, then role and relationship checks.
type Gatekeeper struct {
	tokens      *auth.TokenManager
	users       repository.UserRepositoryIface
	companies   repository.CompanyRepositoryIface
	teams       repository.TeamRepositoryIface
	invitations repository.InvitationRepositoryIface
}

func NewGatekeeper(tokens *auth.TokenManager, users repository.UserRepositoryIface, companies repository.CompanyRepositoryIface, teams repository.TeamRepositoryIface, invitations repository.InvitationRepositoryIface) *Gatekeeper {
	return &Gatekeeper{
		tokens:      tokens,
		users:       users,
		companies:   companies,
		teams:       teams,
		invitations: invitations,
	}
}

// VerifyToken authenticates the bearer token and stores the decoded claims.
// An expired token gets a distinct message from a malformed or mis-signed
// one so clients know whether to refresh or to re-authenticate.
func (g *Gatekeeper) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}

		claims, err := g.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Token expired", nil)
				return
			}
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Invalid token", nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// SuperAdminAccess requires the super-admin role on the caller's own company
// binding. The 401 (rather than 403) is kept for client compatibility.
func (g *Gatekeeper) SuperAdminAccess(next http.Handler) http.Handler {
	return g.requireRole(next, func(role model.Role) bool { return role == model.RoleSuperAdmin },
		"super-admin access required")
}

// AdminAccess requires the company admin role.
func (g *Gatekeeper) AdminAccess(next http.Handler) http.Handler {
	return g.requireRole(next, func(role model.Role) bool { return role == model.RoleAdmin },
		"admin access required")
}

// AdminOrSuperAdminAccess accepts either elevated role.
func (g *Gatekeeper) AdminOrSuperAdminAccess(next http.Handler) http.Handler {
	return g.requireRole(next, func(role model.Role) bool {
		return role == model.RoleAdmin || role == model.RoleSuperAdmin
	}, "admin or super-admin access required")
}

func (g *Gatekeeper) requireRole(next http.Handler, allow func(model.Role) bool, issue string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}
		role, err := g.companies.GetCompanyRoleForUser(r.Context(), claims.UserID, claims.Company)
		if err != nil {
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to resolve role", nil)
			return
		}
		if !allow(role) {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindForbidden, "Access denied",
				[]map[string]string{{"field": "role", "issue": issue}})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsCompanyUser passes callers holding any company role (admin, member or
// restricted) for the company named by the request; super-admins pass for any
// company. The company id is looked up in the body, then the URL params, then
// the query string, then the token claims.
func (g *Gatekeeper) IsCompanyUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}

		companyID := requestUint(r, "companyId")
		if companyID == 0 {
			companyID = claims.Company
		}

		role, err := g.companies.GetCompanyRoleForUser(r.Context(), claims.UserID, companyID)
		if err != nil {
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to resolve role", nil)
			return
		}
		if role.IsCompanyMember() {
			next.ServeHTTP(w, r)
			return
		}

		// Not a member of the named company; a super-admin on their own
		// company still passes.
		ownRole, err := g.companies.GetCompanyRoleForUser(r.Context(), claims.UserID, claims.Company)
		if err != nil {
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to resolve role", nil)
			return
		}
		if ownRole == model.RoleSuperAdmin {
			next.ServeHTTP(w, r)
			return
		}

		serializer.Error(w, http.StatusForbidden, serializer.KindForbidden, "Not a member of this company", nil)
	})
}

// IsMemberOfTeam resolves the team to its company and requires a company role
// there.
func (g *Gatekeeper) IsMemberOfTeam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}
		role, handled := g.teamRole(w, r, claims)
		if handled {
			return
		}
		if !role.IsCompanyMember() {
			serializer.Error(w, http.StatusForbidden, serializer.KindForbidden, "Not a member of this team", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsMemberOfTeamOrSharedMember additionally accepts callers whose email holds
// a shared-team grant. The grant check runs only when the role resolves to
// the no-role sentinel; a resolved role is never coerced into the shared
// branch.
func (g *Gatekeeper) IsMemberOfTeamOrSharedMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}
		role, handled := g.teamRole(w, r, claims)
		if handled {
			return
		}
		if role.IsCompanyMember() {
			next.ServeHTTP(w, r)
			return
		}
		if role == model.RoleNone {
			teamID := requestUint(r, "teamId")
			shared, err := g.teams.IsSharedWithEmail(r.Context(), teamID, claims.Email)
			if err != nil {
				serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to check shared access", nil)
				return
			}
			if shared {
				next.ServeHTTP(w, r)
				return
			}
		}
		serializer.Error(w, http.StatusForbidden, serializer.KindForbidden, "Not a member of this team", nil)
	})
}

// teamRole resolves the caller's role in the company owning the requested
// team. The bool reports whether a response was already written.
func (g *Gatekeeper) teamRole(w http.ResponseWriter, r *http.Request, claims *auth.Claims) (model.Role, bool) {
	teamID := requestUint(r, "teamId")
	if teamID == 0 {
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Missing team id",
			[]map[string]string{{"field": "teamId", "issue": "required"}})
		return model.RoleNone, true
	}
	companyID, err := g.teams.CompanyIDForTeam(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, "Team not found",
				[]map[string]string{{"field": "teamId", "issue": "no such team"}})
			return model.RoleNone, true
		}
		serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to resolve team", nil)
		return model.RoleNone, true
	}
	role, err := g.companies.GetCompanyRoleForUser(r.Context(), claims.UserID, companyID)
	if err != nil {
		serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to resolve role", nil)
		return model.RoleNone, true
	}
	return role, false
}

// UserExists rejects requests naming a user id with no row behind it.
func (g *Gatekeeper) UserExists(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := requestUint(r, "userId")
		if userID == 0 {
			if claims, ok := ClaimsFromContext(r.Context()); ok {
				userID = claims.UserID
			}
		}
		exists, err := g.users.Exists(r.Context(), userID)
		if err != nil {
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to check user", nil)
			return
		}
		if !exists {
			serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, "User not found", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TeamExists rejects requests naming a team id with no row behind it.
func (g *Gatekeeper) TeamExists(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		teamID := requestUint(r, "teamId")
		exists, err := g.teams.Exists(r.Context(), teamID)
		if err != nil {
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to check team", nil)
			return
		}
		if !exists {
			serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, "Team not found",
				[]map[string]string{{"field": "teamId", "issue": "no such team"}})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CompanyExists rejects requests naming a missing company. The 401 with a
// bad_request kind matches the established client contract; new callers
// should treat any non-2xx as fatal here.
func (g *Gatekeeper) CompanyExists(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := requestUint(r, "companyId")
		if companyID == 0 {
			if claims, ok := ClaimsFromContext(r.Context()); ok {
				companyID = claims.Company
			}
		}
		exists, err := g.companies.Exists(r.Context(), companyID)
		if err != nil {
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to check company", nil)
			return
		}
		if !exists {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindBadRequest, "Company not found", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsValidRole rejects bodies whose role field is not an assignable role.
func (g *Gatekeeper) IsValidRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := peekBody(r)
		code, ok := numberField(body, "role")
		if !ok || !model.ParseRole(code).IsAssignable() {
			serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Invalid role",
				[]map[string]string{{"field": "role", "issue": "must be admin, member or restricted"}})
			return
		}
		next.ServeHTTP(w, r)
	})
}

var allowedFileExtensions = map[string]bool{
	"pdf": true, "doc": true, "docx": true, "txt": true, "md": true,
	"csv": true, "xls": true, "xlsx": true, "ppt": true, "pptx": true,
}

// IsValidFileExtension rejects uploads whose declared type is outside the
// allow-list. The 401 status differs from the other validation gates and is
// kept as-is for client compatibility.
func (g *Gatekeeper) IsValidFileExtension(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := peekBody(r)
		fileType, _ := body["fileType"].(string)
		if !allowedFileExtensions[strings.ToLower(fileType)] {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindBadRequest, "File type not allowed", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsSenderOwner requires the caller to be the sender of the invitation they
// are operating on.
func (g *Gatekeeper) IsSenderOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}
		invitationID := requestUint(r, "invitationId")
		invitation, err := g.invitations.FindByID(r.Context(), invitationID)
		if err != nil {
			if errors.Is(err, domain.ErrInvitationNotFound) {
				serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, "Invitation not found", nil)
				return
			}
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to check invitation", nil)
			return
		}
		if invitation.Sender != claims.UserID {
			serializer.Error(w, http.StatusForbidden, serializer.KindForbidden, "Not the sender of this invitation", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsAccountVerified blocks unverified accounts from everything past login.
func (g *Gatekeeper) IsAccountVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
			return
		}
		user, err := g.users.FindByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, "User not found", nil)
				return
			}
			serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Failed to check account", nil)
			return
		}
		if user.Status != model.StatusVerified {
			serializer.Error(w, http.StatusForbidden, serializer.KindForbidden, "Account not verified", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestUint finds a numeric id by name, checking the JSON body, the URL
// params and the query string in that order. Zero means absent.
func requestUint(r *http.Request, name string) uint {
	if body := peekBody(r); body != nil {
		if n, ok := numberField(body, name); ok && n > 0 {
			return uint(n)
		}
	}
	if v := chi.URLParam(r, name); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n)
		}
	}
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n)
		}
	}
	return 0
}

/// peekBody decodes a JSON body without consuming it: the bytes are restored
// so the handler can decode them again.
func peekBody(r *http.Request) map[string]any {
	if r.Body == nil || r.Method == http.MethodGet {
		return nil
	}
	buf, err := io.ReadAll(r.Body)
	if err != nil {
		return nil
	}
	r.Body = io.NopCloser(bytes.NewReader(buf))
	if len(buf) == 0 {
		return nil
	}
	var body map[string]any
	if err := json.Unmarshal(buf, &body); err != nil {
		return nil
	}
	return body
}

// numberField reads a JSON number or numeric string field.
func numberField(body map[string]any, name string) (int, bool) {
	if body == nil {
		return 0, false
	}
	switch v := body[name].(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
