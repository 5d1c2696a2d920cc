// internal/email/mailer.go
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
)

// Mailer sends the two transactional messages the platform produces.
type Mailer interface {
	SendVerification(ctx context.Context, toEmail, toName, verifyURL string) error
	SendInvitation(ctx context.Context, toEmail, companyName, inviteURL string) error
}

// TemplateSource resolves a stored template by name. A nil source or a
// missing row falls back to the built-in copy, so a fresh install sends mail
// before any template is seeded.
type TemplateSource interface {
	FindByName(ctx context.Context, name string) (*model.EmailTemplate, error)
}

type SendgridMailer struct {
	client    *sendgrid.Client
	from      *mail.Email
	templates TemplateSource
}

func NewSendgridMailer(apiKey, fromAddress string, templates TemplateSource) *SendgridMailer {
	return &SendgridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		from:      mail.NewEmail("TeamDock", fromAddress),
		templates: templates,
	}
}

// renderTemplate substitutes the named template's placeholders. The second
// return reports whether a stored template was used.
func renderTemplate(ctx context.Context, source TemplateSource, name string, vars map[string]string) (subject, body string, ok bool) {
	if source == nil {
		return "", "", false
	}
	template, err := source.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrTemplateNotFound) {
			slog.Warn("Failed to load email template", "template", name, "error", err)
		}
		return "", "", false
	}
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	replacer := strings.NewReplacer(pairs...)
	return replacer.Replace(template.Subject), replacer.Replace(template.Template), true
}

func (m *SendgridMailer) SendVerification(ctx context.Context, toEmail, toName, verifyURL string) error {
	subject := "Verify your TeamDock account"
	plain := fmt.Sprintf("Hi %s,\n\nConfirm your account by opening this link:\n%s\n", toName, verifyURL)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Confirm your account by clicking <a href="%s">this link</a>.</p>`, toName, verifyURL)
	if s, b, ok := renderTemplate(ctx, m.templates, model.TemplateVerification, map[string]string{
		"name": toName,
		"url":  verifyURL,
	}); ok {
		subject, html = s, b
	}

	return m.send(ctx, mail.NewEmail(toName, toEmail), subject, plain, html)
}

func (m *SendgridMailer) SendInvitation(ctx context.Context, toEmail, companyName, inviteURL string) error {
	subject := fmt.Sprintf("You have been invited to join %s on TeamDock", companyName)
	plain := fmt.Sprintf("You have been invited to join %s.\n\nAccept here:\n%s\n", companyName, inviteURL)
	html := fmt.Sprintf(`<p>You have been invited to join <b>%s</b>.</p><p><a href="%s">Accept the invitation</a>.</p>`, companyName, inviteURL)
	if s, b, ok := renderTemplate(ctx, m.templates, model.TemplateInvitation, map[string]string{
		"company": companyName,
		"url":     inviteURL,
	}); ok {
		subject, html = s, b
	}

	return m.send(ctx, mail.NewEmail("", toEmail), subject, plain, html)
}

func (m *SendgridMailer) send(ctx context.Context, to *mail.Email, subject, plain, html string) error {
	message := mail.NewSingleEmail(m.from, subject, to, plain, html)
	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sending email: status %d", response.StatusCode)
	}
	return nil
}

// NoopMailer logs instead of sending. Used when no API key is configured and
// in tests.
type NoopMailer struct{}

func (NoopMailer) SendVerification(ctx context.Context, toEmail, toName, verifyURL string) error {
	slog.Info("Email sending disabled, skipping verification email", "to", toEmail)
	return nil
}

func (NoopMailer) SendInvitation(ctx context.Context, toEmail, companyName, inviteURL string) error {
	slog.Info("Email sending disabled, skipping invitation email", "to", toEmail)
	return nil
}
