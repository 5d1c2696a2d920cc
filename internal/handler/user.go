// internal/handler/user.go
package handler

import (
	"net/http"

	"github.com/teamdock/teamdock/internal/middleware"
	"github.com/teamdock/teamdock/internal/serializer"
	"github.com/teamdock/teamdock/internal/service"
)

type UserHandler struct {
	users    service.UserServiceIface
	usage    service.UsageServiceIface
	deletion service.DeletionServiceIface
}

func NewUserHandler(users service.UserServiceIface, usage service.UsageServiceIface, deletion service.DeletionServiceIface) *UserHandler {
	return &UserHandler{users: users, usage: usage, deletion: deletion}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decode(w, r, &input) {
		return
	}
	user, err := h.users.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusCreated, "Account created, check your email to verify it", user)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decode(w, r, &input) {
		return
	}
	result, err := h.users.Login(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", result)
}

func (h *UserHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if !decode(w, r, &input) {
		return
	}
	if err := h.users.VerifyAccount(r.Context(), input.Email, input.Code); err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "Account verified", nil)
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	user, err := h.users.Profile(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", user)
}

func (h *UserHandler) MyUsage(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	query, dateErr := parseUsageQuery(r)
	if dateErr != nil {
		respondError(w, dateErr)
		return
	}
	report, err := h.usage.GetUserUsage(r.Context(), claims.UserID, query)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", report)
}

// DeleteProfile tears down the caller's own account. Failures answer 200 with
// success:false; existing clients read the flag, not the status code.
func (h *UserHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	if err := h.deletion.DeleteUser(r.Context(), claims.UserID); err != nil {
		serializer.Failure(w, "Something went wrong")
		return
	}
	serializer.Success(w, http.StatusOK, "Account deleted", nil)
}
