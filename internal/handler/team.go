// internal/handler/team.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teamdock/teamdock/internal/middleware"
	"github.com/teamdock/teamdock/internal/serializer"
	"github.com/teamdock/teamdock/internal/service"
)

type TeamHandler struct {
	teams service.TeamServiceIface
}

func NewTeamHandler(teams service.TeamServiceIface) *TeamHandler {
	return &TeamHandler{teams: teams}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	var input service.CreateTeamInput
	if !decode(w, r, &input) {
		return
	}
	input.CreatorID = claims.UserID
	if input.CompanyID == 0 {
		input.CompanyID = claims.Company
	}
	team, err := h.teams.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusCreated, "Team created", team)
}

// Get serves one team; the membership-or-shared-grant gate runs before this
// handler.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID := pathUint(chi.URLParam(r, "teamId"))
	team, err := h.teams.Get(r.Context(), teamID)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", team)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := h.companyID(r)
	teams, err := h.teams.List(r.Context(), companyID)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", teams)
}

func (h *TeamHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	companyID := h.companyID(r)
	teams, err := h.teams.ListActive(r.Context(), companyID)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", teams)
}

func (h *TeamHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	teamID := pathUint(chi.URLParam(r, "teamId"))
	var input struct {
		Active *bool `json:"active"`
	}
	if !decode(w, r, &input) {
		return
	}
	if input.Active == nil {
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Missing active flag",
			[]map[string]string{{"field": "active", "issue": "required"}})
		return
	}
	if err := h.teams.SetStatus(r.Context(), teamID, *input.Active); err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "Team status updated", nil)
}

// companyID prefers the explicit query parameter, falling back to the
// caller's own company.
func (h *TeamHandler) companyID(r *http.Request) uint {
	if raw := r.URL.Query().Get("companyId"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return uint(n)
		}
	}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return claims.Company
	}
	return 0
}
