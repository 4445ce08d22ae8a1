package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	mailgun "github.com/mailgun/mailgun-go/v5"

	"github.com/gibugumi/cms/internal/config"
	"github.com/gibugumi/cms/internal/i18n"
	"github.com/gibugumi/cms/internal/model"
)

// newMailgunServer returns a fake Mailgun API capturing posted form values.
func newMailgunServer(t *testing.T) (*httptest.Server, chan url.Values) {
	t.Helper()
	received := make(chan url.Values, 1)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		values := url.Values{}
		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "multipart/form-data") {
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				t.Fatalf("parse multipart form: %v", err)
			}
			for key, vals := range r.MultipartForm.Value {
				for _, v := range vals {
					values.Add(key, v)
				}
			}
		} else {
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			for key, vals := range r.PostForm {
				for _, v := range vals {
					values.Add(key, v)
				}
			}
		}

		received <- values
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"123","message":"Queued"}`))
	}))
	t.Cleanup(ts.Close)
	return ts, received
}

func newTestDispatcher(t *testing.T, cfg config.Mail) (*MailgunDispatcher, chan url.Values) {
	t.Helper()
	ts, received := newMailgunServer(t)

	mg := mailgun.NewMailgun(cfg.APIKey)
	mg.SetHTTPClient(ts.Client())
	if err := mg.SetAPIBase(ts.URL); err != nil {
		t.Fatalf("set api base: %v", err)
	}

	bundle, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	return NewMailgunDispatcher(cfg, bundle, mg), received
}

func testMailConfig() config.Mail {
	return config.Mail{
		Domain: "mg.example.com",
		APIKey: "key",
		From:   "Site <no-reply@example.com>",
	}
}

func TestSendAdminNotification_SubjectAndRecipient(t *testing.T) {
	cfg := testMailConfig()
	cfg.AdminAddress = "owner@example.com"
	d, received := newTestDispatcher(t, cfg)

	msg := &model.ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello there",
	}
	if err := d.SendAdminNotification(context.Background(), msg); err != nil {
		t.Fatalf("SendAdminNotification failed: %v", err)
	}

	values := <-received
	if got := values.Get("to"); got != "owner@example.com" {
		t.Errorf("expected to=owner@example.com, got %q", got)
	}
	if got := values.Get("subject"); !strings.Contains(got, "Jane") {
		t.Errorf("expected subject to include submitter name, got %q", got)
	}
	if got := values.Get("text"); !strings.Contains(got, "Hello there") {
		t.Errorf("expected body to include message content, got %q", got)
	}
}

func TestAdminAddress_FallsBackToDefault(t *testing.T) {
	d, received := newTestDispatcher(t, testMailConfig())

	if got := d.AdminAddress(); got != DefaultAdminAddress {
		t.Fatalf("expected default admin address, got %q", got)
	}

	msg := &model.ContactMessage{Name: "Bob", Email: "bob@example.com", Message: "Hi"}
	if err := d.SendAdminNotification(context.Background(), msg); err != nil {
		t.Fatalf("SendAdminNotification failed: %v", err)
	}

	values := <-received
	if got := values.Get("to"); got != DefaultAdminAddress {
		t.Errorf("expected fallback recipient %q, got %q", DefaultAdminAddress, got)
	}
}

func TestSendConfirmation_UsesSubmissionLocale(t *testing.T) {
	d, received := newTestDispatcher(t, testMailConfig())

	msg := &model.ContactMessage{
		Name:    "山田",
		Email:   "yamada@example.jp",
		Message: "こんにちは",
	}
	if err := d.SendConfirmation(context.Background(), msg, "ja"); err != nil {
		t.Fatalf("SendConfirmation failed: %v", err)
	}

	values := <-received
	if got := values.Get("to"); got != "yamada@example.jp" {
		t.Errorf("expected confirmation addressed to submitter, got %q", got)
	}
	if got := values.Get("subject"); got != "お問い合わせありがとうございます" {
		t.Errorf("expected ja subject, got %q", got)
	}
	if body := values.Get("text"); !strings.Contains(body, "山田") {
		t.Errorf("expected body to interpolate name, got %q", body)
	}
}

func TestSendAdminNotification_NotConfigured(t *testing.T) {
	bundle, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	d := NewMailgunDispatcher(config.Mail{}, bundle, nil)

	msg := &model.ContactMessage{Name: "X", Email: "x@example.com", Message: "Hi"}
	if err := d.SendAdminNotification(context.Background(), msg); err == nil {
		t.Error("expected error when mailgun is not configured")
	}
}
