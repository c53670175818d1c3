package auth

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertrack/internal/domain"
	"github.com/GlebRadaev/ordertrack/internal/policy"
	"github.com/GlebRadaev/ordertrack/pkg/utils"
)

const LoginPath = "/login"

// Middleware attaches the session identity, if any, to the request context.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := m.Load(r); ok {
			r = r.WithContext(WithIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			zap.L().Debug("redirecting to login", zap.String("path", r.URL.Path), zap.Error(domain.ErrUnauthenticated))
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Require authenticates the request and consults the policy table for action.
func Require(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := CurrentRole(r.Context())
			if !policy.Allows(role, action) {
				zap.L().Info("access denied",
					zap.String("role", string(role)),
					zap.String("action", string(action)),
					zap.Any("allowed", policy.AllowedRoles(action)),
					zap.String("path", r.URL.Path),
				)
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
