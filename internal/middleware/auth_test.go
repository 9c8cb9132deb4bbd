package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/ianwestfall/tourneyman-web/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedHandler(t *testing.T) (http.Handler, *scs.SessionManager) {
	t.Helper()

	sessionManager := scs.New()
	store := session.NewStore(sessionManager)

	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		require.True(t, sess.LoggedIn)
		w.Write([]byte(sess.User.Email))
	})

	handler := sessionManager.LoadAndSave(LoadSession(store)(RequireAuth(protected)))
	return handler, sessionManager
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	handler, _ := newGuardedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/create", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	handler, sessionManager := newGuardedHandler(t)
	store := session.NewStore(sessionManager)

	// Establish a logged-in session and capture its cookie.
	login := sessionManager.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store.SetLogin(r.Context(), "jane@example.com", []byte(`{"access_token": "tok"}`))
	}))
	loginRec := httptest.NewRecorder()
	login.ServeHTTP(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil))

	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/create", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@example.com", rec.Body.String())
}

func TestSessionFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, SessionFromContext(req.Context()).LoggedIn)
}
