// Package middleware provides the HTTP middleware for customer sessions.
package middleware

import (
	"context"
	"net/http"

	"github.com/bloom-cafe/api/internal/cart"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "bloom_session"

type contextKey string

const sessionKey contextKey = "session"

// Session resolves the caller's cart session from the session cookie,
// creating one when the cookie is missing or stale. The table query
// parameter is captured only at session creation; later requests cannot
// reassign a session's table.
func Session(mgr *cart.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *cart.Session
			if c, err := r.Cookie(SessionCookie); err == nil {
				sess, _ = mgr.Get(c.Value)
			}
			if sess == nil {
				sess = mgr.Create(r.URL.Query().Get("table"))
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext extracts the cart session from the request context.
// Returns nil if the Session middleware did not run.
func SessionFromContext(ctx context.Context) *cart.Session {
	sess, _ := ctx.Value(sessionKey).(*cart.Session)
	return sess
}
