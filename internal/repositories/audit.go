package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

// AuditWriteRepository appends audit records. Records are never updated or deleted.
type AuditWriteRepository struct {
	db *sqlx.DB
}

func NewAuditWriteRepository(db *sqlx.DB) *AuditWriteRepository {
	return &AuditWriteRepository{db: db}
}

func (r *AuditWriteRepository) Save(ctx context.Context, audit *models.Audit) error {
	const query = `
		INSERT INTO audits (id, user_id, method, url, action, old_values, new_values, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`

	if audit.ID == uuid.Nil {
		audit.ID = uuid.New()
	}
	args := []any{
		audit.ID, audit.UserID, audit.Method, audit.URL, string(audit.Action),
		nullJSON(audit.OldValues), nullJSON(audit.NewValues),
		audit.IPAddress, audit.UserAgent,
	}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&audit.CreatedAt)
	logQuery(query, []any{audit.ID, audit.UserID, audit.Method, audit.URL, audit.Action}, audit.ID, err)
	return err
}

func nullJSON(raw json.RawMessage) types.NullJSONText {
	if len(raw) == 0 {
		return types.NullJSONText{}
	}
	return types.NullJSONText{JSONText: types.JSONText(raw), Valid: true}
}
