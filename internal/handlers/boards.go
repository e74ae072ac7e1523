package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/middlewares"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

//go:generate mockgen -source=boards.go -destination=mock_boards.go -package=handlers

// BoardManager manages the boards of the acting user.
type BoardManager interface {
	List(ctx context.Context, actor *models.User) ([]models.Board, error)
	Create(ctx context.Context, actor *models.User, name string) (*models.Board, error)
	Get(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Board, error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, name string) (*models.Board, error)
	Delete(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// BoardRequest is the body of board create and update
// swagger:model BoardRequest
type BoardRequest struct {
	// required: true
	// default: Proyecto Kanban
	Nombre string `json:"nombre" validate:"required,max=255"`
}

// NewListBoardsHandler returns an HTTP handler listing the actor's boards.
// @Summary List boards
// @Description Boards of the current user with their columns and tasks
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.DataResponse "Tableros obtenidos correctamente."
// @Failure 401 {object} handlers.MessageResponse
// @Router /boards [get]
func NewListBoardsHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boards, err := svc.List(r.Context(), middlewares.UserFromContext(r.Context()))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if boards == nil {
			boards = []models.Board{}
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: boards, Mensaje: "Tableros obtenidos correctamente."})
	}
}

// NewCreateBoardHandler returns an HTTP handler creating a board.
// @Summary Create board
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.BoardRequest true "Board"
// @Success 201 {object} handlers.DataResponse "Tablero creado exitosamente."
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /boards [post]
func NewCreateBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BoardRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		board, err := svc.Create(r.Context(), middlewares.UserFromContext(r.Context()), req.Nombre)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, DataResponse{Data: board, Mensaje: "Tablero creado exitosamente."})
	}
}

// NewGetBoardHandler returns an HTTP handler showing a board.
// @Summary Show board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Success 200 {object} handlers.DataResponse "Tablero obtenido correctamente."
// @Failure 403 {object} handlers.MensajeResponse "No autorizado para ver este tablero."
// @Failure 404 {object} handlers.MessageResponse "Tablero no encontrado."
// @Router /boards/{boardID} [get]
func NewGetBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		board, err := svc.Get(r.Context(), middlewares.UserFromContext(r.Context()), id)
		if err != nil {
			writeResourceError(w, err, "No autorizado para ver este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: board, Mensaje: "Tablero obtenido correctamente."})
	}
}

// NewUpdateBoardHandler returns an HTTP handler renaming a board.
// @Summary Update board
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param request body handlers.BoardRequest true "Board"
// @Success 200 {object} handlers.DataResponse "Tablero actualizado correctamente."
// @Failure 403 {object} handlers.MensajeResponse "No autorizado para actualizar este tablero."
// @Failure 404 {object} handlers.MessageResponse "Tablero no encontrado."
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /boards/{boardID} [put]
// @Router /boards/{boardID} [patch]
func NewUpdateBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		var req BoardRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		board, err := svc.Update(r.Context(), middlewares.UserFromContext(r.Context()), id, req.Nombre)
		if err != nil {
			writeResourceError(w, err, "No autorizado para actualizar este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: board, Mensaje: "Tablero actualizado correctamente."})
	}
}

// NewDeleteBoardHandler returns an HTTP handler deleting a board with its columns and tasks.
// @Summary Delete board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Success 200 {object} handlers.DataResponse "Tablero eliminado correctamente."
// @Failure 403 {object} handlers.MensajeResponse "No autorizado para eliminar este tablero."
// @Failure 404 {object} handlers.MessageResponse "Tablero no encontrado."
// @Router /boards/{boardID} [delete]
func NewDeleteBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), middlewares.UserFromContext(r.Context()), id); err != nil {
			writeResourceError(w, err, "No autorizado para eliminar este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: nil, Mensaje: "Tablero eliminado correctamente."})
	}
}
