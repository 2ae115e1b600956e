package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shoplite/shoplite-go/internal/token"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth returns middleware that validates the Bearer token from
// the Authorization header against the token store and injects the
// authenticated user id into the request context.
func RequireAuth(tokens *token.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				reject(w, http.StatusUnauthorized, "token not provided")
				return
			}

			tok, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tok == "" {
				reject(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			userID, err := tokens.Authenticate(tok)
			if err != nil {
				reject(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id from the request
// context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
