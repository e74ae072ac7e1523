package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

const (
	msgUnauthenticated = "No autenticado"
	msgInternalError   = "Error interno del servidor"
)

// TokenExtractor pulls the bearer token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionResolver turns a token into the session of its owner.
type SessionResolver interface {
	CurrentUser(ctx context.Context, tokenString string) (*models.Session, error)
}

// AuthMiddleware resolves the acting user from the Authorization header
// and stores the session in the request context.
func AuthMiddleware(tokens TokenExtractor, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "error", err)
				writeMessage(w, http.StatusUnauthorized, "message", msgUnauthenticated)
				return
			}

			session, err := resolver.CurrentUser(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrUnauthenticated) {
					writeMessage(w, http.StatusUnauthorized, "message", msgUnauthenticated)
					return
				}
				logger.Log.Errorw("failed to resolve session", "error", err)
				writeMessage(w, http.StatusInternalServerError, "message", msgInternalError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

type sessionKey struct{}

// WithSession stores the session in ctx.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session stored by AuthMiddleware or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionKey{}).(*models.Session)
	return session
}

// UserFromContext returns the acting user or nil.
func UserFromContext(ctx context.Context) *models.User {
	if session := SessionFromContext(ctx); session != nil {
		return session.User
	}
	return nil
}

func writeMessage(w http.ResponseWriter, status int, key, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{key: message})
}
