package auth

import (
	"context"
	"net/http"
)

type contextKey string

const adminIDKey contextKey = "admin_id"

// AdminIDFromContext は context から adminID を取得する
func AdminIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminIDKey).(string)
	return v, ok
}

// WithAdminID は context に adminID をセットする
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// RequireAdmin は管理画面用の認証ミドルウェア。セッションが無効な場合は
// ログイン画面へリダイレクトする
func RequireAdmin(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}

			adminID, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}

			ctx := WithAdminID(r.Context(), adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetSessionCookie はログイン成功時にセッションクッキーを発行する
func SetSessionCookie(w http.ResponseWriter, adminID string, secret []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName(),
		Value:    CreateSessionToken(adminID, secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie はログアウト時にセッションクッキーを破棄する
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
