package models

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// AuditAction is the kind of operation an audited request performed.
type AuditAction string

// Audit actions derived from the HTTP method
const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionRead   AuditAction = "read"
)

// AuditActionForMethod maps an HTTP method to its audit action.
func AuditActionForMethod(method string) AuditAction {
	switch method {
	case http.MethodPost:
		return AuditActionCreate
	case http.MethodPut, http.MethodPatch:
		return AuditActionUpdate
	case http.MethodDelete:
		return AuditActionDelete
	default:
		return AuditActionRead
	}
}

// Audit is an append-only record of a request made against the API.
type Audit struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *uuid.UUID      `json:"user_id"`    // Nil when the actor is unknown
	Method    string          `json:"method"`     // HTTP method
	URL       string          `json:"url"`        // Full request URL including query
	Action    AuditAction     `json:"action"`     // Derived from Method
	OldValues json.RawMessage `json:"old_values"` // Target entity before the change, nil if none
	NewValues json.RawMessage `json:"new_values"` // Request body for POST/PUT/PATCH, nil for DELETE
	IPAddress string          `json:"ip_address"`
	UserAgent string          `json:"user_agent"`
	CreatedAt time.Time       `json:"created_at"`
}
