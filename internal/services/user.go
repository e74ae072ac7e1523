package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

const (
	msgEmailTaken  = "El email ya ha sido registrado."
	msgRoleInvalid = "El role seleccionado no es válido."
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserUpdate carries the fields to change; nil fields are left as they are.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.Role
}

// UserService is the administrative surface over users.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// List returns every user.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Get returns the user with id or ErrUserNotFound.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// Create registers a new user with a hashed password.
func (svc *UserService) Create(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, newValidationError("role", msgRoleInvalid)
	}
	if err := svc.ensureEmailFree(ctx, email, nil); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, newValidationError("email", msgEmailTaken)
		}
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}

	return user, nil
}

// Update applies upd to the user with id. The email must stay unique among other users.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (*models.User, error) {
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, newValidationError("role", msgRoleInvalid)
	}

	user, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil && *upd.Email != user.Email {
		if err := svc.ensureEmailFree(ctx, *upd.Email, &user.ID); err != nil {
			return nil, err
		}
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, newValidationError("email", msgEmailTaken)
		}
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// Delete removes the user with id. Boards owned by the user are removed with it.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.Get(ctx, id); err != nil {
		return err
	}
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	return nil
}

// EnsureAdmin creates an admin account unless a user with email already exists.
func (svc *UserService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	_, err := svc.reader.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to look up admin", "email", email, "error", err)
		return err
	}

	if _, err := svc.Create(ctx, name, email, password, models.RoleAdmin); err != nil {
		return err
	}
	logger.Log.Infow("admin user created", "email", email)
	return nil
}

func (svc *UserService) ensureEmailFree(ctx context.Context, email string, excludeID *uuid.UUID) error {
	taken, err := svc.reader.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "email", email, "error", err)
		return err
	}
	if taken {
		logger.Log.Warnw("email already registered", "email", email)
		return newValidationError("email", msgEmailTaken)
	}
	return nil
}
