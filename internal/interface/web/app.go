package web

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"todo-service/internal/application/interfaces"
)

// Options carries the collaborators the web layer is built from.
type Options struct {
	AuthService  interfaces.AuthService
	TaskService  interfaces.TaskService
	HealthCheck  func(ctx context.Context) error
	SessionTTL   time.Duration
	CookieSecure bool
	InfoLog      *log.Logger
	ErrorLog     *log.Logger
}

type App struct {
	infoLog      *log.Logger
	errorLog     *log.Logger
	authService  interfaces.AuthService
	taskService  interfaces.TaskService
	healthCheck  func(ctx context.Context) error
	renderer     *TemplateRenderer
	sessionTTL   time.Duration
	cookieSecure bool
}

func New(opts Options) (*App, error) {
	if opts.AuthService == nil || opts.TaskService == nil {
		return nil, errors.New("web: auth and task services are required")
	}

	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	app := &App{
		infoLog:      opts.InfoLog,
		errorLog:     opts.ErrorLog,
		authService:  opts.AuthService,
		taskService:  opts.TaskService,
		healthCheck:  opts.HealthCheck,
		renderer:     renderer,
		sessionTTL:   opts.SessionTTL,
		cookieSecure: opts.CookieSecure,
	}
	if app.infoLog == nil {
		app.infoLog = log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	}
	if app.errorLog == nil {
		app.errorLog = log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)
	}
	if app.sessionTTL <= 0 {
		app.sessionTTL = 24 * time.Hour
	}
	return app, nil
}
