// Package auth provides an optional JWT bearer-token middleware. The demo API
// is open by default; the middleware only enforces tokens when a signing
// secret is configured.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// UserIDKey holds the token subject in the request context when a valid
// token is presented.
const UserIDKey contextKey = "userID"

type Middleware struct {
	secretKey []byte
}

// NewMiddleware returns a middleware enforcing HMAC-signed bearer tokens.
// An empty secret disables enforcement entirely.
func NewMiddleware(secret string) *Middleware {
	return &Middleware{
		secretKey: []byte(secret),
	}
}

func (m *Middleware) enabled() bool {
	return len(m.secretKey) > 0
}

func (m *Middleware) ValidateToken(next http.Handler) http.Handler {
	if !m.enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		})

		if err != nil || !token.Valid {
			slog.Warn("Invalid token attempt", "error", err)
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				ctx := context.WithValue(r.Context(), UserIDKey, sub)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
