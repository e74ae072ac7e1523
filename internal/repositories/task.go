package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

const taskColumns = `id, board_id, column_id, title, description, created_at, updated_at`

// TaskReadRepository handles task read operations
type TaskReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTaskReadRepository(db *sqlx.DB, txGetter TxGetter) *TaskReadRepository {
	return &TaskReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns sql.ErrNoRows when the task does not exist.
func (r *TaskReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var task models.Task
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &task, query, id)
	logQuery(query, []any{id}, task.ID, err)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByBoardIDs returns the tasks of the given boards in creation order.
func (r *TaskReadRepository) ListByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	if len(boardIDs) == 0 {
		return tasks, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+taskColumns+` FROM tasks WHERE board_id IN (?) ORDER BY created_at, id`,
		boardIDs,
	)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tasks, query, args...)
	logQuery(query, args, len(tasks), err)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// TaskWriteRepository handles task write operations
type TaskWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTaskWriteRepository(db *sqlx.DB, txGetter TxGetter) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, txGetter: txGetter}
}

func (r *TaskWriteRepository) Create(ctx context.Context, task *models.Task) error {
	const query = `
		INSERT INTO tasks (id, board_id, column_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	args := []any{task.ID, task.BoardID, task.ColumnID, task.Title, task.Description}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&task.CreatedAt, &task.UpdatedAt)
	logQuery(query, args, task.ID, err)
	return err
}

func (r *TaskWriteRepository) Update(ctx context.Context, task *models.Task) error {
	const query = `
		UPDATE tasks SET column_id = $2, title = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	args := []any{task.ID, task.ColumnID, task.Title, task.Description}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&task.UpdatedAt)
	logQuery(query, args, task.UpdatedAt, err)
	return err
}

func (r *TaskWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM tasks WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return err
}
