package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

const msgForbidden = "No autorizado"

// RequireRole lets the request through only if the acting user holds one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				writeMessage(w, http.StatusUnauthorized, "message", msgUnauthenticated)
				return
			}
			if !user.HasRole(roles...) {
				logger.Log.Warnw("role check failed", "userID", user.ID, "role", user.Role, "path", r.URL.Path)
				writeMessage(w, http.StatusForbidden, "mensaje", msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
