// internal/handler/superadmin.go
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/serializer"
	"github.com/teamdock/teamdock/internal/service"
)

type SuperAdminHandler struct {
	deletion  service.DeletionServiceIface
	usage     service.UsageServiceIface
	settings  service.SettingsServiceIface
	templates service.EmailTemplateServiceIface
	companies repository.CompanyRepositoryIface
}

func NewSuperAdminHandler(deletion service.DeletionServiceIface, usage service.UsageServiceIface, settings service.SettingsServiceIface, templates service.EmailTemplateServiceIface, companies repository.CompanyRepositoryIface) *SuperAdminHandler {
	return &SuperAdminHandler{deletion: deletion, usage: usage, settings: settings, templates: templates, companies: companies}
}

// DeleteCompany tears down a whole company. A missing company is a 404; any
// failure inside the transaction answers 200 with success:false, the contract
// existing clients depend on.
func (h *SuperAdminHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := pathUint(chi.URLParam(r, "companyId"))
	err := h.deletion.DeleteCompanyAccount(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, "Company not found", nil)
			return
		}
		serializer.Failure(w, "Something went wrong")
		return
	}
	serializer.Success(w, http.StatusOK, "Company account deleted", nil)
}

func (h *SuperAdminHandler) UserUsage(w http.ResponseWriter, r *http.Request) {
	userID := pathUint(chi.URLParam(r, "userId"))
	query, dateErr := parseUsageQuery(r)
	if dateErr != nil {
		respondError(w, dateErr)
		return
	}
	report, err := h.usage.GetUserUsage(r.Context(), userID, query)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", report)
}

func (h *SuperAdminHandler) CompanyUsage(w http.ResponseWriter, r *http.Request) {
	companyID := pathUint(chi.URLParam(r, "companyId"))
	query, dateErr := parseUsageQuery(r)
	if dateErr != nil {
		respondError(w, dateErr)
		return
	}
	report, err := h.usage.GetCompanyUsage(r.Context(), companyID, query)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", report)
}

// UserRole reports the role a user holds in their own company. Used by the
// admin console to render capabilities before acting on a user.
func (h *SuperAdminHandler) UserRole(w http.ResponseWriter, r *http.Request) {
	userID := pathUint(chi.URLParam(r, "userId"))
	companyID, err := h.companies.GetCompanyIDForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoRole) {
			serializer.Success(w, http.StatusOK, "", map[string]any{
				"role": int(model.RoleNone),
				"name": model.RoleNone.String(),
			})
			return
		}
		respondError(w, err)
		return
	}
	role, err := h.companies.GetCompanyRoleForUser(r.Context(), userID, companyID)
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", map[string]any{
		"role":      int(role),
		"name":      role.String(),
		"companyId": companyID,
	})
}

func (h *SuperAdminHandler) ListEmailTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", map[string]any{"templates": templates})
}

// UpdateEmailTemplate applies a partial edit to one template. Subject, body
// and name are each optional; an empty edit is a 400.
func (h *SuperAdminHandler) UpdateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := pathUint(chi.URLParam(r, "templateId"))
	var input service.UpdateTemplateInput
	if !decode(w, r, &input) {
		return
	}
	if err := h.templates.Update(r.Context(), templateID, input); err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "Email template updated", nil)
}

func (h *SuperAdminHandler) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.All(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", settings)
}

// PatchEnvironment updates admin settings and refreshes the cache so the
// aggregator picks the new limits up immediately.
func (h *SuperAdminHandler) PatchEnvironment(w http.ResponseWriter, r *http.Request) {
	var input map[string]string
	if !decode(w, r, &input) {
		return
	}
	if len(input) == 0 {
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "No settings supplied", nil)
		return
	}
	for name, value := range input {
		if err := h.settings.Set(r.Context(), name, value); err != nil {
			respondError(w, err)
			return
		}
	}
	if err := h.settings.Reload(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "Settings updated", nil)
}
