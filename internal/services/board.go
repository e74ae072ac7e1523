package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

//go:generate mockgen -source=board.go -destination=mock_board.go -package=services

// BoardReader defines read operations for boards.
type BoardReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Board, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Board, error)
}

// BoardWriter defines write operations for boards.
type BoardWriter interface {
	Create(ctx context.Context, board *models.Board) error
	Update(ctx context.Context, board *models.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BoardService manages the boards of the acting user.
type BoardService struct {
	boards  BoardReader
	writer  BoardWriter
	columns ColumnReader
	tasks   TaskReader
}

// NewBoardService creates a new BoardService.
func NewBoardService(boards BoardReader, writer BoardWriter, columns ColumnReader, tasks TaskReader) *BoardService {
	return &BoardService{
		boards:  boards,
		writer:  writer,
		columns: columns,
		tasks:   tasks,
	}
}

// List returns the actor's boards with their columns and tasks.
func (s *BoardService) List(ctx context.Context, actor *models.User) ([]models.Board, error) {
	boards, err := s.boards.ListByUser(ctx, actor.ID)
	if err != nil {
		logger.Log.Errorw("failed to list boards", "userID", actor.ID, "error", err)
		return nil, err
	}
	if err := s.loadChildren(ctx, boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// Create adds a board owned by actor.
func (s *BoardService) Create(ctx context.Context, actor *models.User, name string) (*models.Board, error) {
	board := &models.Board{UserID: actor.ID, Name: name}
	if err := s.writer.Create(ctx, board); err != nil {
		logger.Log.Errorw("failed to create board", "userID", actor.ID, "error", err)
		return nil, err
	}
	return board, nil
}

// Get returns the board with its columns and tasks if actor owns it.
func (s *BoardService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Board, error) {
	board, err := s.ownedBoard(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	boards := []models.Board{*board}
	if err := s.loadChildren(ctx, boards); err != nil {
		return nil, err
	}
	return &boards[0], nil
}

// Update renames the board if actor owns it.
func (s *BoardService) Update(ctx context.Context, actor *models.User, id uuid.UUID, name string) (*models.Board, error) {
	board, err := s.ownedBoard(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	board.Name = name
	if err := s.writer.Update(ctx, board); err != nil {
		logger.Log.Errorw("failed to update board", "boardID", id, "error", err)
		return nil, err
	}
	return board, nil
}

// Delete removes the board with all its columns and tasks if actor owns it.
func (s *BoardService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if _, err := s.ownedBoard(ctx, actor, id); err != nil {
		return err
	}
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete board", "boardID", id, "error", err)
		return err
	}
	return nil
}

// ownedBoard loads the board and checks ownership.
func (s *BoardService) ownedBoard(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Board, error) {
	return ownedBoard(ctx, s.boards, actor, id)
}

func (s *BoardService) loadChildren(ctx context.Context, boards []models.Board) error {
	if len(boards) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(boards))
	index := make(map[uuid.UUID]int, len(boards))
	for i := range boards {
		ids[i] = boards[i].ID
		index[boards[i].ID] = i
		boards[i].Columns = []models.Column{}
		boards[i].Tasks = []models.Task{}
	}

	columns, err := s.columns.ListByBoardIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list columns", "error", err)
		return err
	}
	for _, c := range columns {
		if i, ok := index[c.BoardID]; ok {
			boards[i].Columns = append(boards[i].Columns, c)
		}
	}

	tasks, err := s.tasks.ListByBoardIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "error", err)
		return err
	}
	for _, t := range tasks {
		if i, ok := index[t.BoardID]; ok {
			boards[i].Tasks = append(boards[i].Tasks, t)
		}
	}
	return nil
}

// ownedBoard loads board id and authorizes actor against its owner.
// A missing board is ErrBoardNotFound, someone else's board is ErrForbidden.
func ownedBoard(ctx context.Context, boards BoardReader, actor *models.User, id uuid.UUID) (*models.Board, error) {
	board, err := boards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		logger.Log.Errorw("failed to get board", "boardID", id, "error", err)
		return nil, err
	}
	if err := Authorize(actor, board.UserID); err != nil {
		logger.Log.Warnw("board access denied", "boardID", id, "userID", actorID(actor))
		return nil, err
	}
	return board, nil
}

func actorID(actor *models.User) uuid.UUID {
	if actor == nil {
		return uuid.Nil
	}
	return actor.ID
}
