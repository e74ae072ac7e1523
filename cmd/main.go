package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/kanban-board-api/internal/handlers"
	"github.com/sbilibin2017/kanban-board-api/internal/jwt"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/middlewares"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/sbilibin2017/kanban-board-api/internal/repositories"
	"github.com/sbilibin2017/kanban-board-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/kanban-board-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title kanban-board-api API
// @version 1.0.0
// @description Kanban boards, columns and tasks per authenticated user
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		adminName, adminEmail, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		adminName, adminEmail, adminPassword,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, JWT and admin bootstrap configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminName, adminEmail, adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, no brokers disables audit publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_AUDIT_TOPIC", "audits")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Admin bootstrap
	adminName = getEnv("ADMIN_NAME", "Admin")
	adminEmail = getEnv("ADMIN_EMAIL", "")
	adminPassword = getEnv("ADMIN_PASSWORD", "")

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It applies the schema, bootstraps the admin and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminName, adminEmail, adminPassword string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// Kafka audit writer is optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing audits to Kafka topic %s", kafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	if adminEmail != "" {
		users := services.NewUserService(
			repositories.NewUserReadRepository(db),
			repositories.NewUserWriteRepository(db),
		)
		if err := users.EnsureAdmin(ctx, adminName, adminEmail, adminPassword); err != nil {
			return fmt.Errorf("admin bootstrap: %w", err)
		}
	}

	r := newRouter(db, rdb, kafkaWriter, tokens,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter builds an async writer so audit publishing never holds a response.
// Delivery errors surface through Completion.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           10 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver audits to Kafka", "count", len(messages), "error", err)
			}
		},
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(
	db *sqlx.DB,
	rdb *redis.Client,
	kafkaWriter services.KafkaWriter,
	tokens *jwt.JWT,
	swaggerURL string,
) http.Handler {
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	boardReadRepo := repositories.NewBoardReadRepository(db, txGetter)
	boardWriteRepo := repositories.NewBoardWriteRepository(db, txGetter)
	columnReadRepo := repositories.NewColumnReadRepository(db, txGetter)
	columnWriteRepo := repositories.NewColumnWriteRepository(db, txGetter)
	taskReadRepo := repositories.NewTaskReadRepository(db, txGetter)
	taskWriteRepo := repositories.NewTaskWriteRepository(db, txGetter)
	tokenRepo := repositories.NewAccessTokenRepository(rdb)
	auditRepo := repositories.NewAuditWriteRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, tokens, tokenRepo)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	boardService := services.NewBoardService(boardReadRepo, boardWriteRepo, columnReadRepo, taskReadRepo)
	columnService := services.NewColumnService(boardReadRepo, columnReadRepo, columnWriteRepo)
	taskService := services.NewTaskService(boardReadRepo, columnReadRepo, taskReadRepo, taskWriteRepo)

	auditService := services.NewAuditService(auditRepo, kafkaWriter)
	auditService.RegisterSnapshot("/api/users/{id}",
		services.EntitySnapshot("id", userReadRepo.GetByID))
	auditService.RegisterSnapshot("/api/boards/{boardID}",
		services.EntitySnapshot("boardID", boardReadRepo.GetByID))
	auditService.RegisterSnapshot("/api/boards/{boardID}/columns/{columnID}",
		services.EntitySnapshot("columnID", columnReadRepo.GetByID))
	auditService.RegisterSnapshot("/api/boards/{boardID}/tasks/{taskID}",
		services.EntitySnapshot("taskID", taskReadRepo.GetByID))

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"postgres": db.PingContext,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, authService))

			r.With(middlewares.RequireRole(models.RoleAdmin, models.RoleUser)).
				Post("/auth/logout", handlers.NewLogoutHandler(authService))
			r.With(middlewares.RequireRole(models.RoleAdmin)).
				Get("/auth/me", handlers.NewMeHandler())

			r.Group(func(r chi.Router) {
				r.Use(middlewares.AuditMiddleware(auditService))

				r.Group(func(r chi.Router) {
					r.Use(middlewares.RequireRole(models.RoleAdmin, models.RoleUser))
					r.Get("/users", handlers.NewListUsersHandler(userService))
					r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
				})

				r.Group(func(r chi.Router) {
					r.Use(middlewares.RequireRole(models.RoleAdmin))
					r.Post("/users", handlers.NewCreateUserHandler(userService))
					r.Put("/users/{id}", handlers.NewUpdateUserHandler(userService))
					r.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))
				})

				r.Group(func(r chi.Router) {
					r.Use(middlewares.TxMiddleware(db))

					updateBoard := handlers.NewUpdateBoardHandler(boardService)
					r.Get("/boards", handlers.NewListBoardsHandler(boardService))
					r.Post("/boards", handlers.NewCreateBoardHandler(boardService))
					r.Get("/boards/{boardID}", handlers.NewGetBoardHandler(boardService))
					r.Put("/boards/{boardID}", updateBoard)
					r.Patch("/boards/{boardID}", updateBoard)
					r.Delete("/boards/{boardID}", handlers.NewDeleteBoardHandler(boardService))

					updateColumn := handlers.NewUpdateColumnHandler(columnService)
					r.Get("/boards/{boardID}/columns", handlers.NewListColumnsHandler(columnService))
					r.Post("/boards/{boardID}/columns", handlers.NewCreateColumnHandler(columnService))
					r.Put("/boards/{boardID}/columns/{columnID}", updateColumn)
					r.Patch("/boards/{boardID}/columns/{columnID}", updateColumn)
					r.Delete("/boards/{boardID}/columns/{columnID}", handlers.NewDeleteColumnHandler(columnService))

					updateTask := handlers.NewUpdateTaskHandler(taskService)
					r.Get("/boards/{boardID}/tasks", handlers.NewListTasksHandler(taskService))
					r.Post("/boards/{boardID}/tasks", handlers.NewCreateTaskHandler(taskService))
					r.Put("/boards/{boardID}/tasks/{taskID}", updateTask)
					r.Patch("/boards/{boardID}/tasks/{taskID}", updateTask)
					r.Delete("/boards/{boardID}/tasks/{taskID}", handlers.NewDeleteTaskHandler(taskService))
				})
			})
		})
	})

	return r
}
