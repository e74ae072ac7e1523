package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a card placed in a column of a board.
// ColumnID always references a column of the same board.
type Task struct {
	ID          uuid.UUID `json:"id" db:"id"`
	BoardID     uuid.UUID `json:"board_id" db:"board_id"`
	ColumnID    uuid.UUID `json:"column_id" db:"column_id"`
	Title       string    `json:"titulo" db:"title"`
	Description *string   `json:"descripcion" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Column *Column `json:"column,omitempty" db:"-"`
}
