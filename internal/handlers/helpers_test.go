package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/kanban-board-api/internal/middlewares"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request with an optional JSON body, chi URL params given
// as key/value pairs and, when actor is set, an authenticated session.
func newRequest(method, target, body string, actor *models.User, params ...string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)

	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if actor != nil {
		ctx = middlewares.WithSession(ctx, &models.Session{User: actor, TokenID: "jti"})
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
