package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

const boardColumns = `id, user_id, name, created_at, updated_at`

// BoardReadRepository handles board read operations
type BoardReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBoardReadRepository(db *sqlx.DB, txGetter TxGetter) *BoardReadRepository {
	return &BoardReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns sql.ErrNoRows when the board does not exist.
func (r *BoardReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`

	var board models.Board
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &board, query, id)
	logQuery(query, []any{id}, board.ID, err)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE user_id = $1 ORDER BY created_at, id`

	boards := []models.Board{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &boards, query, userID)
	logQuery(query, []any{userID}, len(boards), err)
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// BoardWriteRepository handles board write operations
type BoardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBoardWriteRepository(db *sqlx.DB, txGetter TxGetter) *BoardWriteRepository {
	return &BoardWriteRepository{db: db, txGetter: txGetter}
}

func (r *BoardWriteRepository) Create(ctx context.Context, board *models.Board) error {
	const query = `
		INSERT INTO boards (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	args := []any{board.ID, board.UserID, board.Name}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&board.CreatedAt, &board.UpdatedAt)
	logQuery(query, args, board.ID, err)
	return err
}

func (r *BoardWriteRepository) Update(ctx context.Context, board *models.Board) error {
	const query = `
		UPDATE boards SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	args := []any{board.ID, board.Name}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&board.UpdatedAt)
	logQuery(query, args, board.UpdatedAt, err)
	return err
}

// Delete removes the board together with its columns and tasks.
func (r *BoardWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM boards WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return err
}
