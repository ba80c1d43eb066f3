package middleware

import (
	"net/http"
	"strings"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
)

// TokenParser verifies a bearer token and returns the session it carries.
type TokenParser interface {
	Parse(tokenString string) (session.Session, error)
}

// SessionAuth enforces a signed session token on protected endpoints and
// places the resulting session in the request context. Websocket clients
// cannot set headers, so a `token` query parameter is accepted as a
// fallback.
func SessionAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				http.Error(w, `{"error": "missing authorization"}`, http.StatusUnauthorized)
				return
			}
			sess, err := parser.Parse(tokenString)
			if err != nil {
				http.Error(w, `{"error": "invalid or expired token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
