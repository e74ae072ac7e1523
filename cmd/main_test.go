package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/docker/go-connections/nat"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/kanban-board-api/internal/jwt"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
	"KAFKA_BROKERS", "KAFKA_AUDIT_TOPIC",
	"JWT_SECRET_KEY", "JWT_EXP_SECOND",
	"ADMIN_NAME", "ADMIN_EMAIL", "ADMIN_PASSWORD",
}

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv blanks every key parseConfig reads; blank values fall back to defaults
func resetEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"cmd"}, want: "config.env"},
		{name: "custom", args: []string{"cmd", "-c", "myconfig.env"}, want: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.want, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		adminName, adminEmail, adminPassword,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)

	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "database", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)

	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Empty(t, redisPassword)
	assert.Equal(t, 10, redisPoolSize)
	assert.Equal(t, 2, redisMinIdleConns)

	assert.Empty(t, kafkaBrokers)
	assert.Equal(t, "audits", kafkaTopic)

	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 3600, jwtExp)

	assert.Equal(t, "Admin", adminName)
	assert.Empty(t, adminEmail)
	assert.Empty(t, adminPassword)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "kanban")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "redispass")
	t.Setenv("REDIS_POOL_SIZE", "15")
	t.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_AUDIT_TOPIC", "kanban.audits")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	t.Setenv("ADMIN_NAME", "Root")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "rootpass1")

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		adminName, adminEmail, adminPassword,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, []string{"127.0.0.1", "9090", "debug"}, []string{appHost, appPort, logLevel})
	assert.Equal(t, []string{"pg.example.com", "admin", "secret", "kanban"}, []string{pgHost, pgUser, pgPassword, pgDB})
	assert.Equal(t, []int{5433, 20, 10}, []int{pgPort, pgMaxOpenConns, pgMaxIdleConns})
	assert.Equal(t, "redis.example.com", redisHost)
	assert.Equal(t, "redispass", redisPassword)
	assert.Equal(t, []int{6380, 2, 15, 5}, []int{redisPort, redisDB, redisPoolSize, redisMinIdleConns})
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, kafkaBrokers)
	assert.Equal(t, "kanban.audits", kafkaTopic)
	assert.Equal(t, "supersecret", jwtSecret)
	assert.Equal(t, 300, jwtExp)
	assert.Equal(t, []string{"Root", "root@example.com", "rootpass1"}, []string{adminName, adminEmail, adminPassword})
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	for _, key := range []string{"POSTGRES_PORT", "REDIS_DB", "JWT_EXP_SECOND"} {
		t.Run(key, func(t *testing.T) {
			resetEnv(t)
			t.Setenv(key, "not-a-number")

			_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _,
				err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_EnvFile(t *testing.T) {
	resetEnv(t)
	for _, k := range configKeys {
		os.Unsetenv(k)
	}

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nKAFKA_BROKERS=broker:9092\n"), 0o600))

	_, appPort, _, _, _, _, _, _, _, _, _, _, _, _, _, _,
		kafkaBrokers, _, _, _, _, _, _,
		err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", appPort)
	assert.Equal(t, []string{"broker:9092"}, kafkaBrokers)
}

// newTestRouter wires the router against sqlmock and a Redis address nobody listens on.
func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	r := newRouter(sqlx.NewDb(mockDB, "pgx"), rdb, nil, tokens, "http://localhost/swagger/doc.json")
	return r, mock
}

func TestNewRouter(t *testing.T) {
	r, mock := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func()
		wantStatus int
		wantBody   string
	}{
		{
			name:       "board routes require a token",
			method:     http.MethodGet,
			target:     "/api/boards",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"No autenticado"}`,
		},
		{
			name:       "user routes require a token",
			method:     http.MethodDelete,
			target:     "/api/users/" + "0f8fad5b-d9cb-469f-a165-70867728950e",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"No autenticado"}`,
		},
		{
			name:       "me requires a token",
			method:     http.MethodGet,
			target:     "/api/auth/me",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"No autenticado"}`,
		},
		{
			name:       "board update accepts PATCH",
			method:     http.MethodPatch,
			target:     "/api/boards/0f8fad5b-d9cb-469f-a165-70867728950e",
			body:       `{"nombre":"Sprint"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"No autenticado"}`,
		},
		{
			name:       "column update accepts PATCH",
			method:     http.MethodPatch,
			target:     "/api/boards/0f8fad5b-d9cb-469f-a165-70867728950e/columns/7c9e6679-7425-40de-944b-e07fc1f90ae7",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "task update accepts PATCH",
			method:     http.MethodPatch,
			target:     "/api/boards/0f8fad5b-d9cb-469f-a165-70867728950e/tasks/7c9e6679-7425-40de-944b-e07fc1f90ae7",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "users have no PATCH",
			method:     http.MethodPatch,
			target:     "/api/users/0f8fad5b-d9cb-469f-a165-70867728950e",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "login is public",
			method:     http.MethodPost,
			target:     "/api/auth/login",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "health reports unavailable redis",
			method:     http.MethodGet,
			target:     "/healthz",
			setup:      func() { mock.ExpectPing() },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"postgres":"ok","redis":"unavailable"}}`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRouter_SwaggerDoc(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc["basePath"])
	paths, _ := doc["paths"].(map[string]any)
	task, _ := paths["/boards/{boardID}/tasks/{taskID}"].(map[string]any)
	assert.Contains(t, task, "put")
	assert.Contains(t, task, "patch")
}

func TestNewKafkaWriter(t *testing.T) {
	w := newKafkaWriter([]string{"kafka-1:9092", "kafka-2:9092"}, "kanban.audits")
	defer w.Close()

	assert.Equal(t, "kanban.audits", w.Topic)
	assert.NotNil(t, w.Addr)
	assert.True(t, w.Async, "publishing must not hold the response")
	assert.LessOrEqual(t, w.BatchTimeout, 50*time.Millisecond)
	require.NotNil(t, w.Completion)
	assert.NotPanics(t, func() { w.Completion(nil, errors.New("broker down")) })
}

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) (string, int) {
	t.Helper()
	ctx := context.Background()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Skipf("%s container unavailable: %v", req.Image, err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	return host, mapped.Int()
}

func call(t *testing.T, method, url, token, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestRun_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	pgHost, pgPort := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}, "5432")
	redisHost, redisPort := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}, "6379")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx,
			"127.0.0.1", "8086", "debug",
			pgHost, pgPort, "user", "password", "testdb",
			5, 2,
			redisHost, redisPort, 0, "", 10, 2,
			nil, "audits",
			"testsecret", 60,
			"Admin", "admin@example.com", "secret123",
		)
	}()

	base := "http://127.0.0.1:8086"
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	status, _ := call(t, http.MethodPost, base+"/api/auth/login", "", `{"email":"admin@example.com","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := call(t, http.MethodPost, base+"/api/auth/login", "", `{"email":"admin@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	admin, _ := body["user"].(map[string]any)
	adminID, _ := admin["id"].(string)
	require.NotEmpty(t, adminID)

	db, err := sqlx.Connect("pgx", fmt.Sprintf("postgres://user:password@%s:%d/testdb?sslmode=disable", pgHost, pgPort))
	require.NoError(t, err)
	defer db.Close()

	status, _ = call(t, http.MethodGet, base+"/api/auth/me", token, "")
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, http.MethodPost, base+"/api/boards", token, `{"nombre":"Sprint"}`)
	require.Equal(t, http.StatusCreated, status)
	board, _ := body["data"].(map[string]any)
	boardID, _ := board["id"].(string)
	require.NotEmpty(t, boardID)

	status, body = call(t, http.MethodPost, fmt.Sprintf("%s/api/boards/%s/columns", base, boardID), token, `{"nombre":"Pendiente","orden":1}`)
	require.Equal(t, http.StatusCreated, status)
	column, _ := body["data"].(map[string]any)

	status, _ = call(t, http.MethodPost, fmt.Sprintf("%s/api/boards/%s/tasks", base, boardID), token,
		fmt.Sprintf(`{"titulo":"Escribir","column_id":%q}`, column["id"]))
	assert.Equal(t, http.StatusCreated, status)

	status, _ = call(t, http.MethodPatch, fmt.Sprintf("%s/api/boards/%s", base, boardID), token, `{"nombre":"Sprint 2"}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodDelete, fmt.Sprintf("%s/api/boards/%s", base, boardID), token, "")
	assert.Equal(t, http.StatusOK, status)

	type auditRow struct {
		Method string  `db:"method"`
		Action string  `db:"action"`
		UserID *string `db:"user_id"`
	}
	auditsFor := func(urlSuffix string) []auditRow {
		var rows []auditRow
		require.NoError(t, db.Select(&rows,
			`SELECT method, action, user_id::TEXT AS user_id FROM audits WHERE url LIKE $1 ORDER BY created_at`,
			"%"+urlSuffix))
		return rows
	}
	assertAudits := func(rows []auditRow, want ...[2]string) {
		require.Len(t, rows, len(want))
		for i, w := range want {
			assert.Equal(t, w[0], rows[i].Method)
			assert.Equal(t, w[1], rows[i].Action)
			require.NotNil(t, rows[i].UserID)
			assert.Equal(t, adminID, *rows[i].UserID)
		}
	}

	assertAudits(auditsFor("/api/boards"), [2]string{"POST", "create"})
	assertAudits(auditsFor("/api/boards/"+boardID),
		[2]string{"PATCH", "update"},
		[2]string{"DELETE", "delete"},
	)

	status, _ = call(t, http.MethodPost, base+"/api/auth/logout", token, "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodGet, base+"/api/boards", token, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = call(t, http.MethodPost, base+"/api/auth/login", "", `{"email":"admin@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)
	token, _ = body["token"].(string)

	status, _ = call(t, http.MethodDelete, base+"/api/users/"+adminID, token, "")
	assert.Equal(t, http.StatusOK, status)
	assertAudits(auditsFor("/api/users/"+adminID), [2]string{"DELETE", "delete"})

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}
