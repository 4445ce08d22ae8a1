// Package spam rejects automated contact-form submissions. Two checks apply:
// hidden honeypot fields that humans never see must stay empty, and the form
// must not be submitted faster than a human plausibly could. The render time
// travels in an HMAC-signed token so the check needs no server-side state.
package spam

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// HoneypotFields are the hidden form field names. Bots tend to fill every
// field; a non-empty value in any of these marks the submission as automated.
var HoneypotFields = []string{"subtitle", "topic"}

// TokenField is the form field carrying the signed render timestamp.
const TokenField = "form_token"

// ErrSpam is returned for any submission the gate rejects. Callers must map it
// to the same response a validation failure produces — the rejection reason is
// never revealed to the client.
var ErrSpam = errors.New("spam: submission rejected")

// Gate validates submissions against the honeypot and timestamp checks.
type Gate struct {
	secret    []byte
	threshold time.Duration
	now       func() time.Time
}

// NewGate creates a Gate. threshold is the minimum time between form render
// and submission; zero or negative disables the timing check but not the
// token signature check.
func NewGate(secret []byte, threshold time.Duration) *Gate {
	return &Gate{secret: secret, threshold: threshold, now: time.Now}
}

// Token returns a fresh signed token embedding the current render time. It is
// placed in a hidden field when the form is rendered.
func (g *Gate) Token() string {
	payload := []byte(strconv.FormatInt(g.now().UnixMilli(), 10))
	return base64.URLEncoding.EncodeToString(payload) + "." + g.sign(payload)
}

// Verify checks a submission. It rejects when any honeypot value is non-empty,
// when the token is missing, malformed or carries a bad signature, or when
// less than the threshold has elapsed since the token was issued.
func (g *Gate) Verify(token string, honeypots ...string) error {
	for _, v := range honeypots {
		if strings.TrimSpace(v) != "" {
			return ErrSpam
		}
	}

	renderedAt, err := g.parseToken(token)
	if err != nil {
		return ErrSpam
	}

	elapsed := g.now().Sub(renderedAt)
	if elapsed < 0 || elapsed < g.threshold {
		return ErrSpam
	}
	return nil
}

func (g *Gate) parseToken(token string) (time.Time, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return time.Time{}, errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	if !hmac.Equal([]byte(g.sign(payload)), []byte(parts[1])) {
		return time.Time{}, errors.New("invalid signature")
	}
	ms, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

func (g *Gate) sign(payload []byte) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
