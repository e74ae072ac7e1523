package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

//go:generate mockgen -source=column.go -destination=mock_column.go -package=services

// ColumnReader defines read operations for columns.
type ColumnReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Column, error)
	ListByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]models.Column, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	Create(ctx context.Context, column *models.Column) error
	Update(ctx context.Context, column *models.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ColumnUpdate carries the fields to change; nil fields are left as they are.
type ColumnUpdate struct {
	Name     *string
	Position *int
}

// ColumnService manages the columns of boards owned by the acting user.
type ColumnService struct {
	boards  BoardReader
	columns ColumnReader
	writer  ColumnWriter
}

// NewColumnService creates a new ColumnService.
func NewColumnService(boards BoardReader, columns ColumnReader, writer ColumnWriter) *ColumnService {
	return &ColumnService{
		boards:  boards,
		columns: columns,
		writer:  writer,
	}
}

// List returns the columns of the board ordered by position.
func (s *ColumnService) List(ctx context.Context, actor *models.User, boardID uuid.UUID) ([]models.Column, error) {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return nil, err
	}

	columns, err := s.columns.ListByBoardIDs(ctx, []uuid.UUID{boardID})
	if err != nil {
		logger.Log.Errorw("failed to list columns", "boardID", boardID, "error", err)
		return nil, err
	}
	return columns, nil
}

// Create adds a column to the board.
func (s *ColumnService) Create(ctx context.Context, actor *models.User, boardID uuid.UUID, name string, position int) (*models.Column, error) {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return nil, err
	}

	column := &models.Column{BoardID: boardID, Name: name, Position: position}
	if err := s.writer.Create(ctx, column); err != nil {
		logger.Log.Errorw("failed to create column", "boardID", boardID, "error", err)
		return nil, err
	}
	return column, nil
}

// Update changes a column of the board.
func (s *ColumnService) Update(ctx context.Context, actor *models.User, boardID, columnID uuid.UUID, upd ColumnUpdate) (*models.Column, error) {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return nil, err
	}

	column, err := boardColumn(ctx, s.columns, boardID, columnID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		column.Name = *upd.Name
	}
	if upd.Position != nil {
		column.Position = *upd.Position
	}

	if err := s.writer.Update(ctx, column); err != nil {
		logger.Log.Errorw("failed to update column", "columnID", columnID, "error", err)
		return nil, err
	}
	return column, nil
}

// Delete removes a column of the board together with its tasks.
func (s *ColumnService) Delete(ctx context.Context, actor *models.User, boardID, columnID uuid.UUID) error {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return err
	}
	if _, err := boardColumn(ctx, s.columns, boardID, columnID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, columnID); err != nil {
		logger.Log.Errorw("failed to delete column", "columnID", columnID, "error", err)
		return err
	}
	return nil
}

// boardColumn fetches the column scoped to boardID.
// A column of another board is reported as ErrColumnNotFound.
func boardColumn(ctx context.Context, columns ColumnReader, boardID, columnID uuid.UUID) (*models.Column, error) {
	column, err := columns.GetByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		logger.Log.Errorw("failed to get column", "columnID", columnID, "error", err)
		return nil, err
	}
	if column.BoardID != boardID {
		logger.Log.Warnw("column belongs to another board", "columnID", columnID, "boardID", boardID)
		return nil, ErrColumnNotFound
	}
	return column, nil
}
