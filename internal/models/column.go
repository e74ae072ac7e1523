package models

import (
	"time"

	"github.com/google/uuid"
)

// Column represents a status lane inside a board
type Column struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BoardID   uuid.UUID `json:"board_id" db:"board_id"`
	Name      string    `json:"nombre" db:"name"`
	Position  int       `json:"orden" db:"position"` // Display rank, not unique
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
