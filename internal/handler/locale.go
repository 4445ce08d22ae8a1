package handler

import (
	"context"
	"net/http"

	"github.com/gibugumi/cms/internal/i18n"
)

type localeContextKey struct{}

const localeCookieName = "locale"

// LocaleFromContext returns the locale resolved for this request.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(localeContextKey{}).(string); ok {
		return v
	}
	return "en"
}

// ResolveLocale is middleware that determines the active locale: an explicit
// ?locale= selection wins (and is remembered in a cookie), then the cookie,
// then the bundle's default. Unsupported locales fall through silently.
func ResolveLocale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := bundle.DefaultLocale()

			if c, err := r.Cookie(localeCookieName); err == nil && bundle.Supported(c.Value) {
				locale = c.Value
			}

			if q := r.URL.Query().Get("locale"); q != "" && bundle.Supported(q) {
				locale = q
				http.SetCookie(w, &http.Cookie{
					Name:     localeCookieName,
					Value:    q,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), localeContextKey{}, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
