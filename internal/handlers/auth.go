package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/middlewares"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// Logouter revokes the token of the current session.
type Logouter interface {
	Logout(ctx context.Context, session *models.Session) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: admin@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token
	// default: JWT_TOKEN
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Token issued"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 401 {object} handlers.MessageResponse "Credenciales inválidas"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeMessage(w, http.StatusUnauthorized, "Credenciales inválidas")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
	}
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary User logout
// @Description Revoke the bearer token used for this request. Other tokens stay valid.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Sesión cerrada"
// @Failure 401 {object} handlers.MessageResponse "No autenticado"
// @Failure 500 {object} handlers.MessageResponse "Error al cerrar sesión"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())
		if session == nil {
			writeMessage(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}

		if err := svc.Logout(r.Context(), session); err != nil {
			logger.Log.Errorw("logout failed", "userID", session.User.ID, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error al cerrar sesión")
			return
		}

		writeMessage(w, http.StatusOK, "Sesión cerrada")
	}
}

// NewMeHandler returns an HTTP handler that echoes the current user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.MessageResponse "No autenticado"
// @Failure 403 {object} handlers.MensajeResponse "No autorizado"
// @Router /auth/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeMessage(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
