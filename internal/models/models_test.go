package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestUser_HasRole(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	user := &User{Role: RoleUser}

	tests := []struct {
		name  string
		user  *User
		roles []Role
		want  bool
	}{
		{"nil user", nil, nil, false},
		{"no roles required", user, nil, true},
		{"admin only as admin", admin, []Role{RoleAdmin}, true},
		{"admin only as user", user, []Role{RoleAdmin}, false},
		{"admin or user as user", user, []Role{RoleAdmin, RoleUser}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.HasRole(tt.roles...))
		})
	}
}

func TestAuditActionForMethod(t *testing.T) {
	tests := []struct {
		method string
		want   AuditAction
	}{
		{http.MethodPost, AuditActionCreate},
		{http.MethodPut, AuditActionUpdate},
		{http.MethodPatch, AuditActionUpdate},
		{http.MethodDelete, AuditActionDelete},
		{http.MethodGet, AuditActionRead},
		{http.MethodHead, AuditActionRead},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, AuditActionForMethod(tt.method))
		})
	}
}
