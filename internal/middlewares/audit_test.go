package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/kanban-board-api/internal/logger"
)

func newAuditRouter(auditor Auditor, actor *models.User, status int) http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if actor != nil {
					req = req.WithContext(WithSession(req.Context(), &models.Session{User: actor}))
				}
				next.ServeHTTP(w, req)
			})
		})
		r.Use(AuditMiddleware(auditor))

		h := func(w http.ResponseWriter, req *http.Request) {
			body, _ := io.ReadAll(req.Body)
			w.WriteHeader(status)
			_, _ = w.Write(body)
		}
		r.Post("/api/boards", h)
		r.Put("/api/boards/{boardID}", h)
		r.Patch("/api/boards/{boardID}", h)
		r.Delete("/api/boards/{boardID}", h)
		r.Get("/api/boards/{boardID}", h)
	})
	return r
}

func TestAuditMiddleware_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &models.User{ID: uuid.New()}
	mockAuditor := NewMockAuditor(ctrl)

	mockAuditor.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Audit) error {
			assert.Equal(t, http.MethodPost, a.Method)
			assert.Equal(t, models.AuditActionCreate, a.Action)
			assert.Equal(t, "http://example.com/api/boards?x=1", a.URL)
			require.NotNil(t, a.UserID)
			assert.Equal(t, actor.ID, *a.UserID)
			assert.Nil(t, a.OldValues)
			assert.JSONEq(t, `{"nombre":"Sprint"}`, string(a.NewValues))
			assert.Equal(t, "192.0.2.1", a.IPAddress)
			assert.Equal(t, "test-agent", a.UserAgent)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/boards?x=1", strings.NewReader(`{"nombre":"Sprint"}`))
	req.Header.Set("User-Agent", "test-agent")
	rr := httptest.NewRecorder()

	newAuditRouter(mockAuditor, actor, http.StatusCreated).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"nombre":"Sprint"}`, rr.Body.String(), "handler still sees the body")
}

func TestAuditMiddleware_UpdateCapturesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardID := uuid.NewString()
	mockAuditor := NewMockAuditor(ctrl)

	gomock.InOrder(
		mockAuditor.EXPECT().Snapshot(gomock.Any(), "/api/boards/{boardID}", map[string]string{"boardID": boardID}).
			Return(json.RawMessage(`{"nombre":"Old"}`), nil),
		mockAuditor.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Audit) error {
				assert.Equal(t, models.AuditActionUpdate, a.Action)
				assert.JSONEq(t, `{"nombre":"Old"}`, string(a.OldValues))
				assert.JSONEq(t, `{"nombre":"New","password":"[REDACTED]"}`, string(a.NewValues))
				return nil
			}),
	)

	req := httptest.NewRequest(http.MethodPut, "/api/boards/"+boardID, strings.NewReader(`{"nombre":"New","password":"secret"}`))
	rr := httptest.NewRecorder()

	newAuditRouter(mockAuditor, &models.User{ID: uuid.New()}, http.StatusOK).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuditMiddleware_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardID := uuid.NewString()
	mockAuditor := NewMockAuditor(ctrl)

	mockAuditor.EXPECT().Snapshot(gomock.Any(), "/api/boards/{boardID}", gomock.Any()).
		Return(nil, errors.New("db error"))
	mockAuditor.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Audit) error {
			assert.Equal(t, models.AuditActionDelete, a.Action)
			assert.Nil(t, a.OldValues)
			assert.Nil(t, a.NewValues)
			return errors.New("audit store down")
		})

	req := httptest.NewRequest(http.MethodDelete, "/api/boards/"+boardID, nil)
	rr := httptest.NewRecorder()

	newAuditRouter(mockAuditor, &models.User{ID: uuid.New()}, http.StatusOK).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "audit failures never change the response")
}

func TestAuditMiddleware_Read(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := NewMockAuditor(ctrl)
	mockAuditor.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Audit) error {
			assert.Equal(t, models.AuditActionRead, a.Action)
			assert.Nil(t, a.UserID)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/boards/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()

	newAuditRouter(mockAuditor, nil, http.StatusOK).ServeHTTP(rr, req)
}

func TestAuditMiddleware_PatchIsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardID := uuid.New()
	mockAuditor := NewMockAuditor(ctrl)

	mockAuditor.EXPECT().Snapshot(gomock.Any(), "/api/boards/{boardID}", map[string]string{"boardID": boardID.String()}).
		Return(json.RawMessage(`{"nombre":"Old"}`), nil)
	mockAuditor.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Audit) error {
			assert.Equal(t, http.MethodPatch, a.Method)
			assert.Equal(t, models.AuditActionUpdate, a.Action)
			assert.JSONEq(t, `{"nombre":"Old"}`, string(a.OldValues))
			assert.JSONEq(t, `{"nombre":"New"}`, string(a.NewValues))
			return nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/api/boards/"+boardID.String(), strings.NewReader(`{"nombre":"New"}`))
	rr := httptest.NewRecorder()
	newAuditRouter(mockAuditor, &models.User{ID: uuid.New()}, http.StatusOK).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuditMiddleware_RecordFailureLogsRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zapcore.ErrorLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = old }()

	mockAuditor := NewMockAuditor(ctrl)
	mockAuditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"nombre":"Sprint"}`))
	rr := httptest.NewRecorder()
	LoggingMiddleware(newAuditRouter(mockAuditor, &models.User{ID: uuid.New()}, http.StatusCreated)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	entries := logs.FilterMessage("failed to record audit").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rr.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestCaptureBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: ""},
		{name: "nested password", body: `{"user":{"password":"x","name":"a"}}`, want: `{"user":{"password":"[REDACTED]","name":"a"}}`},
		{name: "array", body: `[{"Password":"x"}]`, want: `[{"Password":"[REDACTED]"}]`},
		{name: "not json", body: "plain text", want: `"plain text"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureBody([]byte(tt.body))
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
