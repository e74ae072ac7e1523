package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/middlewares"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
)

//go:generate mockgen -source=tasks.go -destination=mock_tasks.go -package=handlers

// TaskManager manages the tasks of the actor's boards.
type TaskManager interface {
	List(ctx context.Context, actor *models.User, boardID uuid.UUID) ([]models.Task, error)
	Create(ctx context.Context, actor *models.User, boardID, columnID uuid.UUID, title string, description *string) (*models.Task, error)
	Update(ctx context.Context, actor *models.User, boardID, taskID uuid.UUID, upd services.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, actor *models.User, boardID, taskID uuid.UUID) error
}

// CreateTaskRequest is the body of task create
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// required: true
	// default: Escribir documentación
	Titulo      string  `json:"titulo" validate:"required,max=255"`
	Descripcion *string `json:"descripcion"`
	// required: true
	ColumnID string `json:"column_id" validate:"required,uuid"`
}

// UpdateTaskRequest is the body of task update; absent fields are left unchanged
// swagger:model UpdateTaskRequest
// descripcion may be null to clear it
type UpdateTaskRequest struct {
	Titulo      *string        `json:"titulo" validate:"omitnil,min=1,max=255"`
	Descripcion NullableString `json:"descripcion"`
	ColumnID    *string        `json:"column_id" validate:"omitnil,uuid"`
}

// NullableString tells an explicit JSON null apart from an absent field.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only called when the field is present.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// NewListTasksHandler returns an HTTP handler listing the tasks of a board.
// @Summary List tasks
// @Description Tasks of the board, each with its column
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Success 200 {object} handlers.DataResponse "Tareas obtenidas correctamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Router /boards/{boardID}/tasks [get]
func NewListTasksHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		tasks, err := svc.List(r.Context(), middlewares.UserFromContext(r.Context()), boardID)
		if err != nil {
			writeResourceError(w, err, "No autorizado para ver las tareas de este tablero.")
			return
		}
		if tasks == nil {
			tasks = []models.Task{}
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: tasks, Mensaje: "Tareas obtenidas correctamente."})
	}
}

// NewCreateTaskHandler returns an HTTP handler adding a task to a column of a board.
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param request body handlers.CreateTaskRequest true "Task"
// @Success 201 {object} handlers.DataResponse "Tarea creada exitosamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /boards/{boardID}/tasks [post]
func NewCreateTaskHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}

		var req CreateTaskRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		columnID := uuid.MustParse(req.ColumnID)

		task, err := svc.Create(r.Context(), middlewares.UserFromContext(r.Context()), boardID, columnID, req.Titulo, req.Descripcion)
		if err != nil {
			writeResourceError(w, err, "No autorizado para crear tareas en este tablero.")
			return
		}
		writeJSON(w, http.StatusCreated, DataResponse{Data: task, Mensaje: "Tarea creada exitosamente."})
	}
}

// NewUpdateTaskHandler returns an HTTP handler changing or moving a task.
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param taskID path string true "Task ID"
// @Param request body handlers.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} handlers.DataResponse "Tarea actualizada correctamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Failure 422 {object} handlers.ValidationErrorResponse
// @Router /boards/{boardID}/tasks/{taskID} [put]
// @Router /boards/{boardID}/tasks/{taskID} [patch]
func NewUpdateTaskHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}
		taskID, ok := pathID(w, r, "taskID", msgTaskNotFound)
		if !ok {
			return
		}

		var req UpdateTaskRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		upd := services.TaskUpdate{
			Title:            req.Titulo,
			Description:      req.Descripcion.Value,
			ClearDescription: req.Descripcion.Set && req.Descripcion.Value == nil,
		}
		if req.ColumnID != nil {
			columnID := uuid.MustParse(*req.ColumnID)
			upd.ColumnID = &columnID
		}

		task, err := svc.Update(r.Context(), middlewares.UserFromContext(r.Context()), boardID, taskID, upd)
		if err != nil {
			writeResourceError(w, err, "No autorizado para actualizar tareas en este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: task, Mensaje: "Tarea actualizada correctamente."})
	}
}

// NewDeleteTaskHandler returns an HTTP handler deleting a task.
// @Summary Delete task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Board ID"
// @Param taskID path string true "Task ID"
// @Success 200 {object} handlers.DataResponse "Tarea eliminada correctamente."
// @Failure 403 {object} handlers.MensajeResponse
// @Failure 404 {object} handlers.MessageResponse
// @Router /boards/{boardID}/tasks/{taskID} [delete]
func NewDeleteTaskHandler(svc TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := pathID(w, r, "boardID", msgBoardNotFound)
		if !ok {
			return
		}
		taskID, ok := pathID(w, r, "taskID", msgTaskNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), middlewares.UserFromContext(r.Context()), boardID, taskID); err != nil {
			writeResourceError(w, err, "No autorizado para eliminar tareas en este tablero.")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Data: nil, Mensaje: "Tarea eliminada correctamente."})
	}
}
