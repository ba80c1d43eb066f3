package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
)

// sessionClaims are the JWT claims carried by a session token.
type sessionClaims struct {
	Role session.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HMAC session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer. An empty secret disables auth at the
// middleware layer, so callers should treat it as a configuration error.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given session.
func (t *TokenIssuer) Issue(sess session.Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("identity: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and returns the session it carries.
func (t *TokenIssuer) Parse(tokenString string) (session.Session, error) {
	claims := sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return session.Session{}, ErrInvalidCredentials
	}
	sess := session.Session{Username: claims.Subject, Role: claims.Role}
	if sess.Username == "" || !sess.Role.Valid() {
		return session.Session{}, ErrInvalidCredentials
	}
	return sess, nil
}
