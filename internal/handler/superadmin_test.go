package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/handler"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/service"
)

type stubDeletionService struct {
	err error
}

func (s stubDeletionService) DeleteUser(ctx context.Context, userID uint) error { return s.err }

func (s stubDeletionService) DeleteCompanyAccount(ctx context.Context, companyID uint) error {
	return s.err
}

type stubUsageService struct {
	report *service.UsageReport
	err    error
}

func (s stubUsageService) GetUserUsage(ctx context.Context, userID uint, query service.UsageQuery) (*service.UsageReport, error) {
	return s.report, s.err
}

func (s stubUsageService) GetCompanyUsage(ctx context.Context, companyID uint, query service.UsageQuery) (*service.UsageReport, error) {
	return s.report, s.err
}

type fakeTemplateRepo struct {
	rows    map[uint]*model.EmailTemplate
	updates map[uint]map[string]any
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		rows:    map[uint]*model.EmailTemplate{},
		updates: map[uint]map[string]any{},
	}
}

func (f *fakeTemplateRepo) List(ctx context.Context) ([]model.EmailTemplate, error) {
	var templates []model.EmailTemplate
	for _, row := range f.rows {
		templates = append(templates, *row)
	}
	return templates, nil
}

func (f *fakeTemplateRepo) FindByID(ctx context.Context, id uint) (*model.EmailTemplate, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	return row, nil
}

func (f *fakeTemplateRepo) FindByName(ctx context.Context, name string) (*model.EmailTemplate, error) {
	for _, row := range f.rows {
		if row.Name == name {
			return row, nil
		}
	}
	return nil, domain.ErrTemplateNotFound
}

func (f *fakeTemplateRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrTemplateNotFound
	}
	f.updates[id] = fields
	return nil
}

func (f *fakeTemplateRepo) Create(ctx context.Context, template *model.EmailTemplate) error {
	template.ID = uint(len(f.rows) + 1)
	f.rows[template.ID] = template
	return nil
}

func superAdminRouter(deletion service.DeletionServiceIface, usage service.UsageServiceIface, templates service.EmailTemplateServiceIface) *chi.Mux {
	h := handler.NewSuperAdminHandler(deletion, usage, nil, templates, nil)
	r := chi.NewRouter()
	r.Delete("/super-admin/companies/{companyId}", h.DeleteCompany)
	r.Get("/super-admin/companies/{companyId}/usage", h.CompanyUsage)
	r.Get("/super-admin/email/templates", h.ListEmailTemplates)
	r.Patch("/super-admin/email/templates/{templateId}", h.UpdateEmailTemplate)
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDeleteCompanyMissingCompanyIs404(t *testing.T) {
	router := superAdminRouter(stubDeletionService{err: domain.ErrCompanyNotFound}, stubUsageService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/super-admin/companies/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "Company not found", body["message"])
}

func TestDeleteCompanyTransactionFailureStays200(t *testing.T) {
	router := superAdminRouter(stubDeletionService{err: errors.New("deadlock")}, stubUsageService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/super-admin/companies/2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Something went wrong", body["message"])
}

func TestCompanyUsageMissingCompanyIs404(t *testing.T) {
	router := superAdminRouter(stubDeletionService{}, stubUsageService{err: domain.ErrCompanyNotFound}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/super-admin/companies/99/usage", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "not_found", body["error"])
}

func TestUpdateEmailTemplateEmptyEditIs400(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.Create(context.Background(), &model.EmailTemplate{Name: model.TemplateVerification})
	router := superAdminRouter(stubDeletionService{}, stubUsageService{}, service.NewEmailTemplateService(repo))

	req := httptest.NewRequest(http.MethodPatch, "/super-admin/email/templates/1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "bad_request", body["error"])
	assert.Empty(t, repo.updates)
}

func TestUpdateEmailTemplatePartialEdit(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.Create(context.Background(), &model.EmailTemplate{Name: model.TemplateInvitation, Subject: "old"})
	router := superAdminRouter(stubDeletionService{}, stubUsageService{}, service.NewEmailTemplateService(repo))

	req := httptest.NewRequest(http.MethodPatch, "/super-admin/email/templates/1",
		strings.NewReader(`{"subject":"Welcome aboard"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"subject": "Welcome aboard"}, repo.updates[1])
}

func TestUpdateEmailTemplateUnknownIDIs404(t *testing.T) {
	router := superAdminRouter(stubDeletionService{}, stubUsageService{}, service.NewEmailTemplateService(newFakeTemplateRepo()))

	req := httptest.NewRequest(http.MethodPatch, "/super-admin/email/templates/42",
		strings.NewReader(`{"subject":"anything"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "not_found", body["error"])
}
