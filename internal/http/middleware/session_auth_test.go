package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Simply-Coder-start/Medi-Triage/internal/identity"
	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
)

func issuer() *identity.TokenIssuer {
	return identity.NewTokenIssuer("secret", time.Hour)
}

func token(t *testing.T, iss *identity.TokenIssuer) string {
	t.Helper()
	signed, err := iss.Issue(session.Session{Username: "amina", Role: session.RolePatient})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestSessionAuthMissingHeader(t *testing.T) {
	mw := SessionAuth(issuer())
	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestSessionAuthInvalidToken(t *testing.T) {
	mw := SessionAuth(issuer())
	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, identity.NewTokenIssuer("other-secret", time.Hour)))
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestSessionAuthValidToken(t *testing.T) {
	iss := issuer()
	mw := SessionAuth(iss)
	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, iss))
	rec := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		sess, ok := session.FromContext(r.Context())
		if !ok {
			t.Fatalf("expected session in context")
		}
		if sess.Username != "amina" || sess.Role != session.RolePatient {
			t.Fatalf("unexpected session %+v", sess)
		}
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatalf("expected next handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestSessionAuthQueryToken(t *testing.T) {
	iss := issuer()
	mw := SessionAuth(iss)
	req := httptest.NewRequest(http.MethodGet, "/api/ws?token="+token(t, iss), nil)
	rec := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatalf("expected next handler to be called")
	}
}
