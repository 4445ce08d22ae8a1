package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/mailer"
	"github.com/gibugumi/cms/internal/queue"
	"github.com/gibugumi/cms/internal/repository"
)

// genericRejection is returned for spam so the caller cannot tell spam
// detection apart from a field validation failure.
const genericRejection = "Message could not be sent"

// emailPattern matches the local@domain shape (RFC-mailto grammar, the same
// one the public form has always enforced).
var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// SpamGate is the slice of the spam gate the pipeline needs.
type SpamGate interface {
	Verify(token string, honeypots ...string) error
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	gate       SpamGate
	dispatcher mailer.Dispatcher
	queue      queue.ConfirmationQueue
}

// NewContactService wires the pipeline from its collaborators.
func NewContactService(
	repo repository.ContactRepository,
	gate SpamGate,
	dispatcher mailer.Dispatcher,
	q queue.ConfirmationQueue,
) ContactService {
	return &contactServiceImpl{repo: repo, gate: gate, dispatcher: dispatcher, queue: q}
}

// Submit runs the pipeline: spam gate, validation, synchronous admin
// notification, durable save, deferred confirmation.
//
// The admin notification is deliberately sent before the save: if persistence
// then fails the operator has still heard about the inquiry, at the price of a
// notified-but-unrecorded record. Inverting the order would need compensating
// cleanup on notify failure.
func (s *contactServiceImpl) Submit(ctx context.Context, sub ContactSubmission) Result {
	if err := s.gate.Verify(sub.SpamToken, sub.Honeypots...); err != nil {
		slog.Info("contact submission rejected as spam")
		return Result{Status: StatusInvalid, Errors: []string{genericRejection}}
	}

	if errs := validateSubmission(sub); len(errs) > 0 {
		return Result{Status: StatusInvalid, Errors: errs}
	}

	msg := &model.ContactMessage{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: strings.TrimSpace(sub.Subject),
		Message: sub.Message,
	}

	if err := s.dispatcher.SendAdminNotification(ctx, msg); err != nil {
		slog.Error("contact: admin notification failed", "email", sub.Email, "error", err)
		return Result{Status: StatusFailed, Err: err}
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		// The admin email is already out at this point.
		slog.Error("contact: save failed after notification", "email", sub.Email, "error", err)
		return Result{Status: StatusFailed, Err: err}
	}

	if err := s.queue.Enqueue(ctx, msg, sub.Locale); err != nil {
		// Deferred delivery failures are invisible to the submitter.
		slog.Warn("contact: confirmation enqueue failed", "email", sub.Email, "error", err)
	}

	return Result{Status: StatusSuccess, Message: msg}
}

// validateSubmission aggregates every failing field, in form order, so the
// user sees all problems at once.
func validateSubmission(sub ContactSubmission) []string {
	var errs []string

	if blank(sub.Name) {
		errs = append(errs, "Name can't be blank")
	}

	switch {
	case blank(sub.Email):
		errs = append(errs, "Email can't be blank")
	case !emailPattern.MatchString(strings.TrimSpace(sub.Email)):
		errs = append(errs, "Email is invalid")
	}

	switch {
	case blank(sub.Message):
		// Covers both empty and whitespace-only messages; "   " is blank even
		// though its raw length clears the minimum.
		errs = append(errs, "Message can't be blank")
	case utf8.RuneCountInString(strings.TrimSpace(sub.Message)) < 2:
		errs = append(errs, "Message is too short (minimum is 2 characters)")
	}

	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
