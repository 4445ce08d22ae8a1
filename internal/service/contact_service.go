package service

import (
	"context"
	"strings"

	"github.com/gibugumi/cms/internal/model"
)

// ContactSubmission carries one raw contact-form payload through the pipeline,
// together with the spam-gate fields and the locale active at submission time.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string

	// SpamToken is the signed render-time token from the hidden form field.
	SpamToken string
	// Honeypots holds the raw values of the hidden honeypot fields.
	Honeypots []string

	Locale string
}

// ResultStatus classifies the outcome of a submission.
type ResultStatus int

const (
	// StatusSuccess: message persisted, admin notified, confirmation queued.
	StatusSuccess ResultStatus = iota
	// StatusInvalid: spam gate or field validation rejected the submission.
	StatusInvalid
	// StatusFailed: the admin notification or the durable save errored.
	StatusFailed
)

// Result is the single transport-agnostic outcome of a submission. The HTTP
// layer adapts it to either a redirect-with-flash or a fragment update.
type Result struct {
	Status ResultStatus

	// Errors holds field validation errors, surfaced verbatim to the user.
	Errors []string

	// Err is the underlying delivery or persistence error for StatusFailed.
	Err error

	// Message is the persisted record on success.
	Message *model.ContactMessage
}

// ErrorList joins the validation errors into the single comma-separated line
// shown to the user. Field order is part of the observable contract.
func (r Result) ErrorList() string {
	return strings.Join(r.Errors, ", ")
}

// ContactService runs the contact submission pipeline.
type ContactService interface {
	Submit(ctx context.Context, sub ContactSubmission) Result
}
