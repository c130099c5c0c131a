package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chromacraft/chromacraft-gobackend/internal/auth"
)

type contextKey string

const claimsKey contextKey = "tokenClaims"

type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireToken gates a handler behind a valid Bearer token. Only a minority
// of mutating routes use it; most of the surface is open.
func (m *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, `{"error":true,"message":"Authorization header required"}`, http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, `{"error":true,"message":"Invalid authorization format"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			log.Printf("Invalid token for %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, `{"error":true,"message":"Invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the verified claims set by RequireToken, or nil.
func ClaimsFromContext(ctx context.Context) jwt.MapClaims {
	claims, _ := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims
}
