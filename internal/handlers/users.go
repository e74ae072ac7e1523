package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserManager is the administrative user service.
type UserManager interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, name, email, password string, role models.Role) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, upd services.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateUserRequest is the body of POST /users
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// default: Ana
	Name string `json:"name" validate:"required,max=255"`
	// default: ana@example.com
	Email string `json:"email" validate:"required,email"`
	// default: secret123
	Password string `json:"password" validate:"required,min=8"`
	// default: user
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// UpdateUserRequest is the body of PUT /users/{id}; absent fields are left unchanged
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitnil,min=1,max=255"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=8"`
	Role     *string `json:"role" validate:"omitnil,oneof=admin user"`
}

// UserListResponse is the body of GET /users
// swagger:model UserListResponse
type UserListResponse struct {
	Users []models.User `json:"users"`
}

// UserResponse wraps a single user
// swagger:model UserResponse
type UserResponse struct {
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserListResponse
// @Failure 401 {object} handlers.MessageResponse
// @Router /users [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		writeJSON(w, http.StatusOK, UserListResponse{Users: users})
	}
}

// NewGetUserHandler returns an HTTP handler showing one user.
// @Summary Show user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse
// @Failure 404 {object} handlers.MessageResponse "Usuario no encontrado"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", msgUserNotFound)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.CreateUserRequest true "User"
// @Success 201 {object} handlers.UserResponse
// @Failure 403 {object} handlers.MensajeResponse "No autorizado"
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /users [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := svc.Create(r.Context(), req.Name, req.Email, req.Password, models.Role(req.Role))
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, UserResponse{Message: "Usuario creado exitosamente", User: user})
	}
}

// NewUpdateUserHandler returns an HTTP handler updating a user.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse
// @Failure 404 {object} handlers.MessageResponse "Usuario no encontrado"
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", msgUserNotFound)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		upd := services.UserUpdate{Name: req.Name, Email: req.Email, Password: req.Password}
		if req.Role != nil {
			role := models.Role(*req.Role)
			upd.Role = &role
		}

		user, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{Message: "Usuario actualizado exitosamente", User: user})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and everything they own.
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse "Usuario eliminado exitosamente"
// @Failure 404 {object} handlers.MessageResponse "Usuario no encontrado"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", msgUserNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeUserError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "Usuario eliminado exitosamente")
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationErrors(w, verr.Errors)
	case errors.Is(err, services.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, msgUserNotFound)
	default:
		writeInternalError(w, err)
	}
}
