package middleware

import (
	"context"
	"net/http"

	"github.com/ianwestfall/tourneyman-web/internal/session"
)

type ContextKey string

const SessionKey ContextKey = "session"

// LoadSession resolves the session record once per request and stows the
// resulting Session value in the request context, so handlers and the guard
// never touch the session manager directly.
func LoadSession(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Load(r.Context())
			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth guards a route group: anonymous requests are redirected to
// the login view, everything else proceeds untouched.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).LoggedIn {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext returns the Session loaded by LoadSession, or a
// logged-out Session when the middleware did not run.
func SessionFromContext(ctx context.Context) session.Session {
	if sess, ok := ctx.Value(SessionKey).(session.Session); ok {
		return sess
	}
	return session.Session{}
}
