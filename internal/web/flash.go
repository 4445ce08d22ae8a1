package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "cms_flash"

// Flash is a transient status message shown once on the next rendered page.
type Flash struct {
	Kind string `json:"kind"` // "notice" or "alert"
	Text string `json:"text"`
}

// SetFlash attaches a flash message to the next response via cookie.
func SetFlash(w http.ResponseWriter, kind, text string) {
	data, _ := json.Marshal(Flash{Kind: kind, Text: text})
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlash reads and clears the pending flash, if any.
func TakeFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	return &f
}
