package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"todo-service/internal/infrastructure"
)

const (
	SessionBackendDatabase = "database"
	SessionBackendRedis    = "redis"

	envDevelopment = "development"
	devSecret      = "dev-insecure-session-secret"
)

type Config struct {
	Env  string
	Addr string

	DBDriver   string
	DBDSN      string
	DBLogLevel string

	SessionSecret  string
	SessionTTL     time.Duration
	SessionBackend string
	CookieSecure   bool

	Redis infrastructure.RedisConfig

	NatsURL           string
	NatsSubjectPrefix string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:  envChoice("APP_ENV", envDevelopment),
		Addr: envString("HTTP_ADDR", ":8080"),

		DBDriver:   envChoice("DB_DRIVER", "sqlite"),
		DBDSN:      envString("DB_DSN", "todo.db"),
		DBLogLevel: envChoice("DB_LOG_LEVEL", "warn"),

		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionBackend: envChoice("SESSION_BACKEND", SessionBackendDatabase),

		Redis: infrastructure.RedisConfig{
			URL:      envString("REDIS_URL", ""),
			Host:     envString("REDIS_HOST", "localhost"),
			Port:     envString("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},

		NatsURL:           envString("NATS_URL", ""),
		NatsSubjectPrefix: envString("NATS_SUBJECT_PREFIX", "tasks"),
	}

	var err error
	if cfg.SessionTTL, err = envDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CookieSecure, err = envBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.SessionSecret == "" {
		if cfg.Env != envDevelopment {
			return nil, errors.New("SESSION_SECRET must be set outside development")
		}
		log.Println("Warning: SESSION_SECRET not set, using an insecure development secret")
		cfg.SessionSecret = devSecret
	}

	switch cfg.SessionBackend {
	case SessionBackendDatabase, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	return cfg, nil
}
