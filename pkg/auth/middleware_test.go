package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	token := CreateSessionToken("admin-42", secret)
	id, err := VerifySessionToken(token, secret)
	if err != nil {
		t.Fatalf("VerifySessionToken failed: %v", err)
	}
	if id != "admin-42" {
		t.Errorf("expected admin-42, got %q", id)
	}
}

func TestVerifySessionToken_RejectsForgedToken(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	other := SessionSecretBytes("other-secret")

	token := CreateSessionToken("admin-42", other)
	if _, err := VerifySessionToken(token, secret); err == nil {
		t.Error("expected verification to fail for foreign secret")
	}
	if _, err := VerifySessionToken("not-a-token", secret); err == nil {
		t.Error("expected verification to fail for malformed token")
	}
}

func TestRequireAdmin_RedirectsWithoutSession(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached without a session")
	})

	req := httptest.NewRequest("GET", "/admin/pages", nil)
	rec := httptest.NewRecorder()
	RequireAdmin(secret)(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("expected redirect to /admin/login, got %q", loc)
	}
}

func TestRequireAdmin_PassesValidSession(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = AdminIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/admin/pages", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName(),
		Value: CreateSessionToken("admin-1", secret),
	})
	rec := httptest.NewRecorder()
	RequireAdmin(secret)(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotID != "admin-1" {
		t.Errorf("expected admin-1 in context, got %q", gotID)
	}
}
