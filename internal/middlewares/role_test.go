package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
	user := &models.User{ID: uuid.New(), Role: models.RoleUser}

	tests := []struct {
		name           string
		roles          []models.Role
		actor          *models.User
		expectedStatus int
		expectedBody   string
	}{
		{name: "admin only, admin", roles: []models.Role{models.RoleAdmin}, actor: admin, expectedStatus: http.StatusOK},
		{name: "admin only, user", roles: []models.Role{models.RoleAdmin}, actor: user, expectedStatus: http.StatusForbidden, expectedBody: `{"mensaje":"No autorizado"}`},
		{name: "admin or user", roles: []models.Role{models.RoleAdmin, models.RoleUser}, actor: user, expectedStatus: http.StatusOK},
		{name: "no roles needs only authentication", actor: user, expectedStatus: http.StatusOK},
		{name: "anonymous", roles: []models.Role{models.RoleUser}, expectedStatus: http.StatusUnauthorized, expectedBody: `{"message":"No autenticado"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.actor != nil {
				req = req.WithContext(WithSession(req.Context(), &models.Session{User: tt.actor}))
			}
			rr := httptest.NewRecorder()

			RequireRole(tt.roles...)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
