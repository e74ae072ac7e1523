package services

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

// Authorize allows actor to act on a resource owned by ownerID.
// It returns ErrForbidden for anyone but the owner.
func Authorize(actor *models.User, ownerID uuid.UUID) error {
	if actor == nil || actor.ID != ownerID {
		return ErrForbidden
	}
	return nil
}
