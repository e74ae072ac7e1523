package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

const columnColumns = `id, board_id, name, position, created_at, updated_at`

// ColumnReadRepository handles column read operations
type ColumnReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewColumnReadRepository(db *sqlx.DB, txGetter TxGetter) *ColumnReadRepository {
	return &ColumnReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns sql.ErrNoRows when the column does not exist.
func (r *ColumnReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Column, error) {
	query := `SELECT ` + columnColumns + ` FROM board_columns WHERE id = $1`

	var column models.Column
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &column, query, id)
	logQuery(query, []any{id}, column.ID, err)
	if err != nil {
		return nil, err
	}
	return &column, nil
}

// ListByBoardIDs returns the columns of the given boards ordered by position.
func (r *ColumnReadRepository) ListByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]models.Column, error) {
	columns := []models.Column{}
	if len(boardIDs) == 0 {
		return columns, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+columnColumns+` FROM board_columns WHERE board_id IN (?) ORDER BY position, created_at, id`,
		boardIDs,
	)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &columns, query, args...)
	logQuery(query, args, len(columns), err)
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// ColumnWriteRepository handles column write operations
type ColumnWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewColumnWriteRepository(db *sqlx.DB, txGetter TxGetter) *ColumnWriteRepository {
	return &ColumnWriteRepository{db: db, txGetter: txGetter}
}

func (r *ColumnWriteRepository) Create(ctx context.Context, column *models.Column) error {
	const query = `
		INSERT INTO board_columns (id, board_id, name, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if column.ID == uuid.Nil {
		column.ID = uuid.New()
	}
	args := []any{column.ID, column.BoardID, column.Name, column.Position}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&column.CreatedAt, &column.UpdatedAt)
	logQuery(query, args, column.ID, err)
	return err
}

func (r *ColumnWriteRepository) Update(ctx context.Context, column *models.Column) error {
	const query = `
		UPDATE board_columns SET name = $2, position = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	args := []any{column.ID, column.Name, column.Position}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&column.UpdatedAt)
	logQuery(query, args, column.UpdatedAt, err)
	return err
}

// Delete removes the column and the tasks placed in it.
func (r *ColumnWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM board_columns WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return err
}
