package http

import (
	"context"
	"net/http"
	"strings"

	"unirent-backend/internal/security"

	"github.com/gorilla/mux"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware validates the bearer session token and stores the
// authenticated user's id in the request context. Handlers read it back via
// UserIDFromContext; there is no ambient session state.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, http.StatusUnauthorized, "Please login to access this page.")
				return
			}

			claims, err := tokens.ValidateSessionToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Please login to access this page.")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
