package spam

import (
	"strings"
	"testing"
	"time"
)

func newTestGate(threshold time.Duration) (*Gate, *time.Time) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGate([]byte("test-secret"), threshold)
	g.now = func() time.Time { return now }
	return g, &now
}

func TestVerify_AcceptsAfterThreshold(t *testing.T) {
	g, now := newTestGate(time.Second)

	token := g.Token()
	*now = now.Add(2 * time.Second)

	if err := g.Verify(token, "", ""); err != nil {
		t.Errorf("expected submission to pass, got %v", err)
	}
}

func TestVerify_RejectsFilledHoneypot(t *testing.T) {
	g, now := newTestGate(time.Second)

	token := g.Token()
	*now = now.Add(time.Minute)

	// Any non-empty honeypot rejects, even with a perfectly valid token.
	if err := g.Verify(token, "I am a bot", ""); err != ErrSpam {
		t.Errorf("expected ErrSpam for filled honeypot, got %v", err)
	}
	if err := g.Verify(token, "", "buy stuff"); err != ErrSpam {
		t.Errorf("expected ErrSpam for second honeypot, got %v", err)
	}
}

func TestVerify_RejectsTooFastSubmission(t *testing.T) {
	g, now := newTestGate(time.Second)

	token := g.Token()
	*now = now.Add(300 * time.Millisecond)

	if err := g.Verify(token, "", ""); err != ErrSpam {
		t.Errorf("expected ErrSpam for instant submission, got %v", err)
	}
}

func TestVerify_RejectsMissingOrMalformedToken(t *testing.T) {
	g, _ := newTestGate(time.Second)

	for _, token := range []string{"", "garbage", "a.b.c", "notbase64.deadbeef"} {
		if err := g.Verify(token); err != ErrSpam {
			t.Errorf("token %q: expected ErrSpam, got %v", token, err)
		}
	}
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	g, now := newTestGate(time.Second)

	token := g.Token()
	*now = now.Add(time.Minute)

	// Flip the signature.
	parts := strings.SplitN(token, ".", 2)
	tampered := parts[0] + "." + strings.Repeat("0", len(parts[1]))
	if err := g.Verify(tampered); err != ErrSpam {
		t.Errorf("expected ErrSpam for tampered signature, got %v", err)
	}

	// Token signed with a different secret.
	other := NewGate([]byte("other-secret"), time.Second)
	other.now = g.now
	if err := g.Verify(other.Token()); err != ErrSpam {
		t.Errorf("expected ErrSpam for foreign token, got %v", err)
	}
}

func TestVerify_RejectsFutureToken(t *testing.T) {
	g, now := newTestGate(time.Second)

	token := g.Token()
	*now = now.Add(-time.Minute)

	if err := g.Verify(token); err != ErrSpam {
		t.Errorf("expected ErrSpam for token from the future, got %v", err)
	}
}
