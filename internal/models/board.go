package models

import (
	"time"

	"github.com/google/uuid"
)

// Board represents a kanban board owned by a single user
type Board struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner
	Name      string    `json:"nombre" db:"name"`           // Board name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp

	Columns []Column `json:"columns,omitempty" db:"-"` // Columns ordered by position, loaded on demand
	Tasks   []Task   `json:"tasks,omitempty" db:"-"`   // Tasks of the board, loaded on demand
}
