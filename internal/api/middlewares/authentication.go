package middlewares

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/utils/auth"
)

func Authentication(secret []byte, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			jwtCookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelWarn,
					"failed to find token in request",
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			claims, err := auth.CheckToken(jwtCookie.Value, secret)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelWarn,
					"authentication failed",
					slog.Any(model.KeyLoggerError, err),
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}

			idCtx := context.WithValue(
				r.Context(), model.KeyContextUserID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(idCtx))
		}
		return http.HandlerFunc(authFunc)
	}
}

// AdminToken lets a request through only when its X-Admin-Token header
// matches token. An empty token disables the admin routes.
func AdminToken(token string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "admin API is disabled", http.StatusForbidden)
				return
			}
			got := r.Header.Get(model.HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.LogAttrs(r.Context(),
					slog.LevelWarn,
					"admin authentication failed",
					slog.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "authentication failed", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
