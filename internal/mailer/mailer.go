// Package mailer delivers contact-form email through Mailgun: a notification
// to the site operator and a localized confirmation to the submitter.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mailgun "github.com/mailgun/mailgun-go/v5"

	"github.com/gibugumi/cms/internal/config"
	"github.com/gibugumi/cms/internal/i18n"
	"github.com/gibugumi/cms/internal/model"
)

// DefaultAdminAddress receives notifications when no admin address is configured.
const DefaultAdminAddress = "info@gibugumi.com"

// Dispatcher sends the two message types of the contact pipeline.
// SendAdminNotification is called synchronously inside the request;
// SendConfirmation runs from the deferred delivery worker.
type Dispatcher interface {
	SendAdminNotification(ctx context.Context, msg *model.ContactMessage) error
	SendConfirmation(ctx context.Context, msg *model.ContactMessage, locale string) error
}

// MailgunDispatcher is the production Dispatcher.
type MailgunDispatcher struct {
	cfg    config.Mail
	bundle *i18n.Bundle
	mg     mailgun.Mailgun
}

// NewMailgunDispatcher constructs a dispatcher from injected configuration.
// When no explicit Mailgun client is supplied a default one is created.
func NewMailgunDispatcher(cfg config.Mail, bundle *i18n.Bundle, mg mailgun.Mailgun) *MailgunDispatcher {
	if mg == nil && cfg.Enabled() {
		mg = mailgun.NewMailgun(cfg.APIKey)
	}
	return &MailgunDispatcher{cfg: cfg, bundle: bundle, mg: mg}
}

var _ Dispatcher = (*MailgunDispatcher)(nil)

// AdminAddress resolves the notification recipient, falling back to the
// hard-coded default when configuration leaves it unset.
func (d *MailgunDispatcher) AdminAddress() string {
	if d.cfg.AdminAddress != "" {
		return d.cfg.AdminAddress
	}
	return DefaultAdminAddress
}

// SendAdminNotification emails the full inquiry to the admin address. The
// submission is not complete until this returns nil.
func (d *MailgunDispatcher) SendAdminNotification(ctx context.Context, msg *model.ContactMessage) error {
	if d.mg == nil {
		return fmt.Errorf("mailer: not configured")
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", msg.Name)
	m := mailgun.NewMessage(d.cfg.Domain, d.cfg.From, subject, adminBody(msg))
	if err := m.AddRecipient(d.AdminAddress()); err != nil {
		return fmt.Errorf("mailer: add recipient: %w", err)
	}
	m.SetReplyTo(msg.Email)
	m.AddHeader("X-Originating-Email", msg.Email)

	if _, err := d.mg.Send(ctx, m); err != nil {
		return fmt.Errorf("mailer: admin notification: %w", err)
	}
	return nil
}

// SendConfirmation emails the submitter in the locale that was active when
// the form was submitted.
func (d *MailgunDispatcher) SendConfirmation(ctx context.Context, msg *model.ContactMessage, locale string) error {
	if d.mg == nil {
		return fmt.Errorf("mailer: not configured")
	}

	subject := d.bundle.T(locale, "contact_mailer.confirmation.subject")
	body := d.bundle.Tf(locale, "contact_mailer.confirmation.body", map[string]string{
		"name":    msg.Name,
		"message": msg.Message,
	})

	m := mailgun.NewMessage(d.cfg.Domain, d.cfg.From, subject, body)
	if err := m.AddRecipient(msg.Email); err != nil {
		return fmt.Errorf("mailer: add recipient: %w", err)
	}

	if _, err := d.mg.Send(ctx, m); err != nil {
		return fmt.Errorf("mailer: confirmation: %w", err)
	}
	return nil
}

func adminBody(msg *model.ContactMessage) string {
	var b strings.Builder
	b.WriteString("Name: ")
	b.WriteString(msg.Name)
	b.WriteString("\nEmail: ")
	b.WriteString(msg.Email)
	if msg.Subject != "" {
		b.WriteString("\nSubject: ")
		b.WriteString(msg.Subject)
	}
	b.WriteString("\nSubmitted: ")
	b.WriteString(time.Now().UTC().Format(time.RFC3339))
	b.WriteString("\n\n")
	b.WriteString(msg.Message)
	return b.String()
}

// LogDispatcher is a development stand-in used when Mailgun is not configured.
// It logs instead of sending so local submissions still succeed.
type LogDispatcher struct{}

var _ Dispatcher = (*LogDispatcher)(nil)

func (LogDispatcher) SendAdminNotification(_ context.Context, msg *model.ContactMessage) error {
	slog.Info("mail (dev): admin notification", "from", msg.Email, "name", msg.Name)
	return nil
}

func (LogDispatcher) SendConfirmation(_ context.Context, msg *model.ContactMessage, locale string) error {
	slog.Info("mail (dev): confirmation", "to", msg.Email, "locale", locale)
	return nil
}
