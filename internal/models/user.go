package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a user.
type Role string

// Supported roles
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User represents a user record in the database
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Display name
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	Role      Role      `json:"role" db:"role"`             // Access level
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// HasRole reports whether the user holds one of roles.
// An empty roles list is satisfied by any user.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
