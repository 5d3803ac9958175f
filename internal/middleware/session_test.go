package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/middleware"
)

func TestSessionCreatedOnFirstRequest(t *testing.T) {
	mgr := cart.NewManager()
	var got *cart.Session
	h := middleware.Session(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.SessionFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart?table=12", nil))

	require.NotNil(t, got)
	require.Equal(t, "12", got.TableID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.SessionCookie, cookies[0].Name)
	require.Equal(t, got.ID, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestSessionReusedAcrossRequests(t *testing.T) {
	mgr := cart.NewManager()
	var sessions []*cart.Session
	h := middleware.Session(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessions = append(sessions, middleware.SessionFromContext(r.Context()))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart?table=3", nil))
	cookie := rec.Result().Cookies()[0]

	// Second request presents the cookie; the table param must not
	// reassign the existing session.
	req := httptest.NewRequest(http.MethodGet, "/cart?table=99", nil)
	req.AddCookie(cookie)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, sessions, 2)
	require.Same(t, sessions[0], sessions[1])
	require.Equal(t, "3", sessions[1].TableID)
}

func TestSessionStaleCookieReplaced(t *testing.T) {
	mgr := cart.NewManager()
	var got *cart.Session
	h := middleware.Session(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "gone"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, got)
	require.Empty(t, got.TableID)
	require.Len(t, rec.Result().Cookies(), 1)
}
