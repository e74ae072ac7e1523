package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns sql.ErrNoRows when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns sql.ErrNoRows when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByEmail reports whether another user already has email.
// excludeID, when set, is ignored in the lookup.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE email = $1 AND ($2::UUID IS NULL OR id <> $2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email, excludeID)
	logQuery(query, []any{email, excludeID}, exists, err)
	return exists, err
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts user and fills its ID and timestamps.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	args := []any{user.ID, user.Name, user.Email, user.Password, user.Role}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	logQuery(query, []any{user.ID, user.Name, user.Email, user.Role}, user.ID, err)
	return mapWriteError(err)
}

// Update overwrites every mutable column of user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	args := []any{user.ID, user.Name, user.Email, user.Password, user.Role}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.UpdatedAt)
	logQuery(query, []any{user.ID, user.Name, user.Email, user.Role}, user.UpdatedAt, err)
	return mapWriteError(err)
}

// Delete removes the user; owned boards go with it.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return err
}
