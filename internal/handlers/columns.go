package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/middlewares"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
)

//go:generate mockgen -source=columns.go -destination=mock_columns.go -package=handlers

// ColumnManager manages the columns of the actor's boards.
type ColumnManager interface {
	List(ctx context.Context, actor *models.User, boardID uuid.UUID) ([]models.Column, error)
	Create(ctx context.Context, actor *models.User, boardID uuid.UUID, name string, position int) (*models.Column, error)
	Update(ctx context.Context, actor *models.User, boardID, columnID uuid.UUID, upd services.ColumnUpdate) (*models.Column, error)
	Delete(ctx context.Context, actor *models.User, boardID, columnID uuid.UUID) error
}

// CreateColumnRequest is the body of column create
// swagger:model CreateColumnRequest
type CreateColumnRequest struct {
	// required: true
	// default: Pendiente
	Nombre string `json:"nombre" validate:"required,max=255"`
	// default: 1
	Orden *int `json:"orden"`
}

// UpdateColumnRequest is the body of column update; absent fields are left unchanged
// swagger:model UpdateColumnRequest
type UpdateColumnRequest struct {
	Nombre *string `json:"nombre" validate:"omitnil,min=1,max=255"`
	Orden  *int    `json:"orden"`
}

// NewListColumnsHandler returns an HTTP handler listing the columns of a board.
// @Summary List columns
// @Tags columns
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Success 200 {object} handlers.DataResponse "Columnas obtenidas correctamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Router /boards/{boardID}/columns [get]
func NewListColumnsHandler(svc ColumnManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		columns, err := svc.List(r.Context(), middlewares.UserFromContext(r.Context()), boardID)
		if err != nil {
			writeResourceError(w, err, "No autorizado para ver las columnas de este tablero.")
			return
		}
		if columns == nil {
			columns = []models.Column{}
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: columns, Mensaje: "Columnas obtenidas correctamente."})
	}
}

// NewCreateColumnHandler returns an HTTP handler adding a column to a board.
// @Summary Create column
// @Tags columns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param request body handlers.CreateColumnRequest true "Column"
// @Success 201 {object} handlers.DataResponse "Columna creada exitosamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /boards/{boardID}/columns [post]
func NewCreateColumnHandler(svc ColumnManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		var req CreateColumnRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		position := 0
		if req.Orden != nil {
			position = *req.Orden
		}

		column, err := svc.Create(r.Context(), middlewares.UserFromContext(r.Context()), boardID, req.Nombre, position)
		if err != nil {
			writeResourceError(w, err, "No autorizado para crear columnas en este tablero.")
			return
		}
		writeJSON(w, http.StatusCreated, DataResponse{Data: column, Mensaje: "Columna creada exitosamente."})
	}
}

// NewUpdateColumnHandler returns an HTTP handler changing a column.
// @Summary Update column
// @Tags columns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param columnID path string true "Column ID"
// @Param request body handlers.UpdateColumnRequest true "Fields to change"
// @Success 200 {object} handlers.DataResponse "Columna actualizada correctamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /boards/{boardID}/columns/{columnID} [put]
// @Router /boards/{boardID}/columns/{columnID} [patch]
func NewUpdateColumnHandler(svc ColumnManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}
		columnID, ok := pathID(w, r, "columnID", msgColumnNotFound)
		if !ok {
			return
		}

		var req UpdateColumnRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		upd := services.ColumnUpdate{Name: req.Nombre, Position: req.Orden}
		column, err := svc.Update(r.Context(), middlewares.UserFromContext(r.Context()), boardID, columnID, upd)
		if err != nil {
			writeResourceError(w, err, "No autorizado para actualizar columnas en este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: column, Mensaje: "Columna actualizada correctamente."})
	}
}

// NewDeleteColumnHandler returns an HTTP handler deleting a column and its tasks.
// @Summary Delete column
// @Tags columns
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param columnID path string true "Column ID"
// @Success 200 {object} handlers.DataResponse "Columna eliminada correctamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Router /boards/{boardID}/columns/{columnID} [delete]
func NewDeleteColumnHandler(svc ColumnManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}
		columnID, ok := pathID(w, r, "columnID", msgColumnNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), middlewares.UserFromContext(r.Context()), boardID, columnID); err != nil {
			writeResourceError(w, err, "No autorizado para eliminar columnas en este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: nil, Mensaje: "Columna eliminada correctamente."})
	}
}
