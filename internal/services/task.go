package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

//go:generate mockgen -source=task.go -destination=mock_task.go -package=services

const msgInvalidColumn = "El column id seleccionado no es válido."

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskUpdate carries the fields to change; nil fields are left as they are.
// ClearDescription empties the description and wins over Description.
type TaskUpdate struct {
	Title            *string
	Description      *string
	ClearDescription bool
	ColumnID         *uuid.UUID
}

// TaskService manages the tasks of boards owned by the acting user.
type TaskService struct {
	boards  BoardReader
	columns ColumnReader
	tasks   TaskReader
	writer  TaskWriter
}

// NewTaskService creates a new TaskService.
func NewTaskService(boards BoardReader, columns ColumnReader, tasks TaskReader, writer TaskWriter) *TaskService {
	return &TaskService{
		boards:  boards,
		columns: columns,
		tasks:   tasks,
		writer:  writer,
	}
}

// List returns the tasks of the board, each with its column.
func (s *TaskService) List(ctx context.Context, actor *models.User, boardID uuid.UUID) ([]models.Task, error) {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return nil, err
	}

	ids := []uuid.UUID{boardID}
	tasks, err := s.tasks.ListByBoardIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "boardID", boardID, "error", err)
		return nil, err
	}
	columns, err := s.columns.ListByBoardIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list columns", "boardID", boardID, "error", err)
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Column, len(columns))
	for i := range columns {
		byID[columns[i].ID] = &columns[i]
	}
	for i := range tasks {
		tasks[i].Column = byID[tasks[i].ColumnID]
	}
	return tasks, nil
}

// Create adds a task to a column of the board.
func (s *TaskService) Create(ctx context.Context, actor *models.User, boardID, columnID uuid.UUID, title string, description *string) (*models.Task, error) {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return nil, err
	}
	if err := s.checkColumn(ctx, boardID, columnID); err != nil {
		return nil, err
	}

	task := &models.Task{
		BoardID:     boardID,
		ColumnID:    columnID,
		Title:       title,
		Description: description,
	}
	if err := s.writer.Create(ctx, task); err != nil {
		logger.Log.Errorw("failed to create task", "boardID", boardID, "error", err)
		return nil, err
	}
	return task, nil
}

// Update changes a task of the board. Moving it to a column of another board is rejected.
func (s *TaskService) Update(ctx context.Context, actor *models.User, boardID, taskID uuid.UUID, upd TaskUpdate) (*models.Task, error) {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return nil, err
	}

	task, err := s.boardTask(ctx, boardID, taskID)
	if err != nil {
		return nil, err
	}

	if upd.ColumnID != nil {
		if err := s.checkColumn(ctx, boardID, *upd.ColumnID); err != nil {
			return nil, err
		}
		task.ColumnID = *upd.ColumnID
	}
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	switch {
	case upd.ClearDescription:
		task.Description = nil
	case upd.Description != nil:
		task.Description = upd.Description
	}

	if err := s.writer.Update(ctx, task); err != nil {
		logger.Log.Errorw("failed to update task", "taskID", taskID, "error", err)
		return nil, err
	}
	return task, nil
}

// Delete removes a task of the board.
func (s *TaskService) Delete(ctx context.Context, actor *models.User, boardID, taskID uuid.UUID) error {
	if _, err := ownedBoard(ctx, s.boards, actor, boardID); err != nil {
		return err
	}
	if _, err := s.boardTask(ctx, boardID, taskID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, taskID); err != nil {
		logger.Log.Errorw("failed to delete task", "taskID", taskID, "error", err)
		return err
	}
	return nil
}

// checkColumn re-fetches the column and requires it to belong to boardID.
// An unknown column is a validation error, a column of another board is ErrColumnNotFound.
func (s *TaskService) checkColumn(ctx context.Context, boardID, columnID uuid.UUID) error {
	column, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return newValidationError("column_id", msgInvalidColumn)
		}
		logger.Log.Errorw("failed to get column", "columnID", columnID, "error", err)
		return err
	}
	if column.BoardID != boardID {
		logger.Log.Warnw("column belongs to another board", "columnID", columnID, "boardID", boardID)
		return ErrColumnNotFound
	}
	return nil
}

func (s *TaskService) boardTask(ctx context.Context, boardID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		logger.Log.Errorw("failed to get task", "taskID", taskID, "error", err)
		return nil, err
	}
	if task.BoardID != boardID {
		logger.Log.Warnw("task belongs to another board", "taskID", taskID, "boardID", boardID)
		return nil, ErrTaskNotFound
	}
	return task, nil
}
