package i18n

import "testing"

func TestLoad_DefaultLocalePresent(t *testing.T) {
	if _, err := Load("en"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := Load("xx"); err == nil {
		t.Error("expected error for unknown default locale")
	}
}

func TestT_ResolvesLocaleTable(t *testing.T) {
	b, err := Load("en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	en := b.T("en", "contact_mailer.confirmation.subject")
	ja := b.T("ja", "contact_mailer.confirmation.subject")

	if en == "" || en == "contact_mailer.confirmation.subject" {
		t.Errorf("expected en translation, got %q", en)
	}
	if ja == en {
		t.Error("expected ja subject to differ from en subject")
	}
	if ja != "お問い合わせありがとうございます" {
		t.Errorf("unexpected ja subject: %q", ja)
	}
}

func TestT_FallsBackToDefaultLocale(t *testing.T) {
	b, err := Load("en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Unknown locale falls back to en; unknown key falls back to the key.
	if got := b.T("fr", "contact.flash.success"); got != "Your message was successfully sent!" {
		t.Errorf("expected en fallback, got %q", got)
	}
	if got := b.T("en", "no.such.key"); got != "no.such.key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestTf_SubstitutesPlaceholders(t *testing.T) {
	b, err := Load("en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := b.Tf("en", "contact.flash.failure", map[string]string{"error": "boom"})
	if got != "Your message could not be sent: boom" {
		t.Errorf("unexpected substitution result: %q", got)
	}
}

func TestSupported(t *testing.T) {
	b, err := Load("en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !b.Supported("ja") {
		t.Error("expected ja to be supported")
	}
	if b.Supported("de") {
		t.Error("did not expect de to be supported")
	}
}
