// internal/handler/invitation.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamdock/teamdock/internal/middleware"
	"github.com/teamdock/teamdock/internal/serializer"
	"github.com/teamdock/teamdock/internal/service"
)

type InvitationHandler struct {
	invitations service.InvitationServiceIface
}

func NewInvitationHandler(invitations service.InvitationServiceIface) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

func (h *InvitationHandler) Invite(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	var input service.InviteInput
	if !decode(w, r, &input) {
		return
	}
	input.SenderID = claims.UserID
	if input.CompanyID == 0 {
		input.CompanyID = claims.Company
	}
	invitation, err := h.invitations.Invite(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusCreated, "Invitation sent", invitation)
}

// Respond accepts or declines a pending invitation.
func (h *InvitationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	invitationID := pathUint(chi.URLParam(r, "invitationId"))
	var input struct {
		Action string `json:"action"`
	}
	if !decode(w, r, &input) {
		return
	}
	switch input.Action {
	case "accept":
		if err := h.invitations.Accept(r.Context(), invitationID, claims.UserID); err != nil {
			respondError(w, err)
			return
		}
		serializer.Success(w, http.StatusOK, "Invitation accepted", nil)
	case "decline":
		if err := h.invitations.Decline(r.Context(), invitationID); err != nil {
			respondError(w, err)
			return
		}
		serializer.Success(w, http.StatusOK, "Invitation declined", nil)
	default:
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Invalid action",
			[]map[string]string{{"field": "action", "issue": "must be accept or decline"}})
	}
}

// Revoke withdraws a pending invitation; the sender-ownership gate runs
// before this handler.
func (h *InvitationHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	invitationID := pathUint(chi.URLParam(r, "invitationId"))
	if err := h.invitations.Revoke(r.Context(), invitationID); err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "Invitation revoked", nil)
}

func (h *InvitationHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}
	invitations, err := h.invitations.ListByCompany(r.Context(), claims.Company)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", invitations)
}
