package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=middlewares

const redacted = "[REDACTED]"

// Auditor captures entity snapshots and stores audit records.
type Auditor interface {
	Snapshot(ctx context.Context, pattern string, params map[string]string) (json.RawMessage, error)
	Record(ctx context.Context, audit *models.Audit) error
}

// AuditMiddleware records one audit entry per request once the handler has responded.
// It reads the matched route, so it must be attached inline (Group or With) after
// AuthMiddleware. Failures are logged and never change the response.
func AuditMiddleware(auditor Auditor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			action := models.AuditActionForMethod(r.Method)

			var oldValues json.RawMessage
			if action == models.AuditActionUpdate || action == models.AuditActionDelete {
				pattern, params := routeOf(ctx)
				snapshot, err := auditor.Snapshot(ctx, pattern, params)
				if err != nil {
					logger.Log.Errorw("failed to capture audit snapshot",
						"request_id", RequestIDFromContext(ctx), "pattern", pattern, "error", err)
				}
				oldValues = snapshot
			}

			var newValues json.RawMessage
			if action == models.AuditActionCreate || action == models.AuditActionUpdate {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					logger.Log.Errorw("failed to read request body", "error", err)
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
				newValues = captureBody(body)
			}

			next.ServeHTTP(w, r)

			audit := &models.Audit{
				Method:    r.Method,
				URL:       fullURL(r),
				Action:    action,
				OldValues: oldValues,
				NewValues: newValues,
				IPAddress: clientIP(r),
				UserAgent: r.UserAgent(),
			}
			if user := UserFromContext(ctx); user != nil {
				id := user.ID
				audit.UserID = &id
			}

			if err := auditor.Record(context.WithoutCancel(ctx), audit); err != nil {
				logger.Log.Errorw("failed to record audit",
					"request_id", RequestIDFromContext(ctx), "method", audit.Method, "url", audit.URL, "error", err)
			}
		})
	}
}

func routeOf(ctx context.Context) (string, map[string]string) {
	rctx := chi.RouteContext(ctx)
	if rctx == nil {
		return "", nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return rctx.RoutePattern(), params
}

// captureBody returns body as JSON with every "password" key redacted.
// A body that is not JSON is kept as a JSON string.
func captureBody(body []byte) json.RawMessage {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		data, _ := json.Marshal(string(body))
		return data
	}

	data, err := json.Marshal(redact(v))
	if err != nil {
		return nil
	}
	return data
}

func redact(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if strings.EqualFold(k, "password") {
				t[k] = redacted
				continue
			}
			t[k] = redact(val)
		}
	case []any:
		for i := range t {
			t[i] = redact(t[i])
		}
	}
	return v
}

func fullURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
