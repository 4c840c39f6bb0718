package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"otoman/internal/api"
	"otoman/internal/user"
	"otoman/pkg/config"
)

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// Middleware authenticates requests carrying `Authorization: Bearer <JWT>`.
// The token subject must resolve to a stored user; everything else is a 401.
func Middleware(cfg config.JWTConfig, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			claims, err := VerifyToken(cfg, strings.TrimSpace(authz[7:]), time.Now())
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			u, err := users.FindByID(r.Context(), claims.Subject)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			next.ServeHTTP(w, r.WithContext(api.WithUser(r.Context(), u)))
		})
	}
}
