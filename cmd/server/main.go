package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/application/services"
	"todo-service/internal/config"
	"todo-service/internal/domain/repositories"
	"todo-service/internal/infrastructure"
	"todo-service/internal/infrastructure/db/gormdb"
	"todo-service/internal/infrastructure/messaging"
	"todo-service/internal/interface/web"
)

const (
	sessionCleanupInterval = time.Hour
	shutdownTimeout        = 10 * time.Second
)

func main() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	if err := run(infoLog, errorLog); err != nil {
		errorLog.Fatal(err)
	}
}

// run owns every resource main opens, so its deferred closes finish before the process exits.
func run(infoLog, errorLog *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := gormdb.Open(gormdb.Options{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DBDSN,
		LogLevel: cfg.DBLogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := gormdb.Close(db); err != nil {
			errorLog.Printf("Failed to close database: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionRepo, closeSessions := newSessionRepository(ctx, cfg, db, errorLog)
	defer closeSessions()

	publisher, closePublisher := newEventPublisher(cfg, errorLog)
	defer closePublisher()

	tokenService := infrastructure.NewSessionTokenService(cfg.SessionSecret)
	authService := services.NewAuthService(gormdb.NewUserRepository(db), sessionRepo, tokenService, cfg.SessionTTL)
	taskService := services.NewTaskService(gormdb.NewTaskRepository(db), publisher)

	if err := authService.CleanupExpiredSessions(ctx); err != nil {
		infoLog.Printf("Warning: failed to cleanup expired sessions: %v", err)
	}
	go cleanupSessions(ctx, authService, infoLog)

	app, err := web.New(web.Options{
		AuthService:  authService,
		TaskService:  taskService,
		HealthCheck:  func(ctx context.Context) error { return gormdb.Ping(ctx, db) },
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
		InfoLog:      infoLog,
		ErrorLog:     errorLog,
	})
	if err != nil {
		return fmt.Errorf("failed to build web app: %w", err)
	}

	srv := &http.Server{
		Addr:     cfg.Addr,
		ErrorLog: errorLog,
		Handler:  app.Routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return serve(ctx, srv, infoLog, errorLog)
}

// serve blocks until ctx is cancelled or the listener fails, whichever comes first.
func serve(ctx context.Context, srv *http.Server, infoLog, errorLog *log.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		infoLog.Printf("Starting server on %s", srv.Addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	infoLog.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errorLog.Printf("Server forced to shutdown: %v", err)
	}
	infoLog.Println("Server exited")
	return nil
}

// newSessionRepository falls back to the database when Redis is unreachable.
func newSessionRepository(ctx context.Context, cfg *config.Config, db *gorm.DB, errorLog *log.Logger) (repositories.SessionRepository, func()) {
	if cfg.SessionBackend == config.SessionBackendRedis {
		client, err := infrastructure.NewRedisClient(ctx, cfg.Redis)
		if err == nil {
			return infrastructure.NewRedisSessionStore(client), func() {
				if err := client.Close(); err != nil {
					errorLog.Printf("Failed to close Redis client: %v", err)
				}
			}
		}
		errorLog.Printf("Redis unavailable, storing sessions in the database: %v", err)
	}
	return gormdb.NewSessionRepository(db), func() {}
}

func newEventPublisher(cfg *config.Config, errorLog *log.Logger) (interfaces.EventPublisher, func()) {
	if cfg.NatsURL == "" {
		return messaging.NoopPublisher{}, func() {}
	}
	nc, err := messaging.ConnectNats(cfg.NatsURL)
	if err != nil {
		errorLog.Printf("NATS unavailable, task events disabled: %v", err)
		return messaging.NoopPublisher{}, func() {}
	}
	return messaging.NewNatsPublisher(nc, cfg.NatsSubjectPrefix), func() { messaging.CloseNats(nc) }
}

func cleanupSessions(ctx context.Context, authService interfaces.AuthService, infoLog *log.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authService.CleanupExpiredSessions(ctx); err != nil {
				infoLog.Printf("Warning: failed to cleanup expired sessions: %v", err)
			}
		}
	}
}
