// internal/service/emailtemplate.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
)

// UpdateTemplateInput carries a partial template edit. Empty fields are left
// untouched; at least one must be set.
type UpdateTemplateInput struct {
	Subject  string `json:"subject"`
	Template string `json:"template"`
	FileName string `json:"fileName"`
}

type EmailTemplateServiceIface interface {
	List(ctx context.Context) ([]model.EmailTemplate, error)
	Update(ctx context.Context, templateID uint, input UpdateTemplateInput) error
}

type EmailTemplateService struct {
	templates repository.EmailTemplateRepositoryIface
}

func NewEmailTemplateService(templates repository.EmailTemplateRepositoryIface) *EmailTemplateService {
	return &EmailTemplateService{templates: templates}
}

func (s *EmailTemplateService) List(ctx context.Context) ([]model.EmailTemplate, error) {
	return s.templates.List(ctx)
}

// Update applies the supplied fields to a template. An edit with no fields is
// rejected before touching the database.
func (s *EmailTemplateService) Update(ctx context.Context, templateID uint, input UpdateTemplateInput) error {
	fields := map[string]any{}
	if input.Subject != "" {
		fields["subject"] = input.Subject
	}
	if input.Template != "" {
		fields["template"] = input.Template
	}
	if input.FileName != "" {
		fields["name"] = input.FileName
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields provided to update", domain.ErrInvalidInput)
	}

	if err := s.templates.Update(ctx, templateID, fields); err != nil {
		return err
	}
	slog.Info("Updated email template", "templateId", templateID)
	return nil
}
