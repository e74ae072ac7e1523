package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := httptest.NewRecorder()
	NewListUsersHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/users", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"users":[]}`, rr.Body.String())
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(&models.User{ID: id, Name: "Ana"}, nil)

		rr := httptest.NewRecorder()
		NewGetUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/users/"+id.String(), "", nil, "id", id.String()))

		assert.Equal(t, http.StatusOK, rr.Code)
		user := decodeBody(t, rr)["user"].(map[string]any)
		assert.Equal(t, "Ana", user["name"])
	})

	t.Run("missing", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		NewGetUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/users/"+id.String(), "", nil, "id", id.String()))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Usuario no encontrado"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewGetUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/users/42", "", nil, "id", "42"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		wantFields   []string
	}{
		{
			name: "created",
			body: `{"name":"Ana","email":"ana@example.com","password":"secret123","role":"user"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "Ana", "ana@example.com", "secret123", models.RoleUser).
					Return(&models.User{ID: uuid.New(), Name: "Ana", Role: models.RoleUser}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "short password and bad role",
			body:         `{"name":"Ana","email":"ana@example.com","password":"short","role":"root"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
			wantFields:   []string{"password", "role"},
		},
		{
			name: "email taken",
			body: `{"name":"Ana","email":"ana@example.com","password":"secret123","role":"admin"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), "Ana", "ana@example.com", "secret123", models.RoleAdmin).
					Return(nil, &services.ValidationError{Errors: map[string][]string{"email": {"El email ya ha sido registrado."}}})
			},
			expectedCode: http.StatusUnprocessableEntity,
			wantFields:   []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewCreateUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/api/users", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeBody(t, rr)
			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, "Usuario creado exitosamente", body["message"])
				return
			}
			assert.Equal(t, "Validación fallida", body["message"])
			errs := body["errors"].(map[string]any)
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd services.UserUpdate) (*models.User, error) {
			require.NotNil(t, upd.Role)
			assert.Equal(t, models.RoleAdmin, *upd.Role)
			assert.Nil(t, upd.Email)
			return &models.User{ID: id, Role: models.RoleAdmin}, nil
		})

	rr := httptest.NewRecorder()
	NewUpdateUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/api/users/"+id.String(), `{"role":"admin"}`, nil, "id", id.String()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Usuario actualizado exitosamente", decodeBody(t, rr)["message"])

	rr = httptest.NewRecorder()
	NewUpdateUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/api/users/"+id.String(), `{"email":""}`, nil, "id", id.String()))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rr := httptest.NewRecorder()
	NewDeleteUserHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodDelete, "/api/users/"+id.String(), "", nil, "id", id.String()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Usuario eliminado exitosamente"}`, rr.Body.String())
}
