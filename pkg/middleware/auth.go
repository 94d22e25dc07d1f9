package middleware

import (
	"net/http"
	"strings"

	"moviebooking/pkg/utils"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// AuthJWT validasi bearer token dan taruh username + roles di context
func AuthJWT(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

			claims, err := utils.ParseToken(secret, token)
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.Subject, claims.Roles)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles - caller harus punya minimal satu role dari daftar.
// Must run after AuthJWT.
func RequireRoles(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := utils.GetUsernameFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			held, _ := utils.GetRolesFromContext(r.Context())
			for _, role := range held {
				if _, ok := allowed[role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role check: access denied",
				zap.String("username", username),
				zap.Strings("roles", held),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Access denied")
		})
	}
}
