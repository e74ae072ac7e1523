package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
)

const (
	msgInternalError   = "Error interno del servidor"
	msgInvalidBody     = "Cuerpo de la solicitud inválido"
	msgValidation      = "Validación fallida"
	msgBoardNotFound   = "Tablero no encontrado."
	msgColumnNotFound  = "Columna no encontrada."
	msgTaskNotFound    = "Tarea no encontrada."
	msgUserNotFound    = "Usuario no encontrado"
	msgUnauthenticated = "No autenticado"
)

// DataResponse wraps a successful board, column or task payload
// swagger:model DataResponse
type DataResponse struct {
	// Payload, null after a delete
	Data any `json:"data"`

	// Human readable outcome
	// default: Tablero creado exitosamente.
	Mensaje string `json:"mensaje"`
}

// MensajeResponse is returned when the actor does not own the board
// swagger:model MensajeResponse
type MensajeResponse struct {
	// default: No autorizado para ver este tablero.
	Mensaje string `json:"mensaje"`
}

// MessageResponse carries a plain message
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Tablero no encontrado.
	Message string `json:"message"`
}

// ValidationErrorResponse lists the failed fields
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// default: Validación fallida
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "error", err)
	writeMessage(w, http.StatusInternalServerError, msgInternalError)
}

func writeValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: msgValidation,
		Errors:  errs,
	})
}

// writeResourceError maps a board, column or task service error to its response.
// forbidden is the message sent when the actor does not own the board.
func writeResourceError(w http.ResponseWriter, err error, forbidden string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationErrors(w, verr.Errors)
	case errors.Is(err, services.ErrForbidden):
		writeJSON(w, http.StatusForbidden, MensajeResponse{Mensaje: forbidden})
	case errors.Is(err, services.ErrBoardNotFound):
		writeMessage(w, http.StatusNotFound, msgBoardNotFound)
	case errors.Is(err, services.ErrColumnNotFound):
		writeMessage(w, http.StatusNotFound, msgColumnNotFound)
	case errors.Is(err, services.ErrTaskNotFound):
		writeMessage(w, http.StatusNotFound, msgTaskNotFound)
	default:
		writeInternalError(w, err)
	}
}

// pathID parses the uuid route parameter name. A malformed id is treated as not found.
func pathID(w http.ResponseWriter, r *http.Request, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeMessage(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}
