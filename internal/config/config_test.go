package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "HTTP_ADDR", "DB_DRIVER", "DB_DSN", "DB_LOG_LEVEL",
		"SESSION_SECRET", "SESSION_TTL", "SESSION_BACKEND", "COOKIE_SECURE",
		"REDIS_URL", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"NATS_URL", "NATS_SUBJECT_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "todo.db", cfg.DBDSN)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, SessionBackendDatabase, cfg.SessionBackend)
	assert.Equal(t, devSecret, cfg.SessionSecret)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, "tasks", cfg.NatsSubjectPrefix)
	assert.Empty(t, cfg.NatsURL)
	assert.False(t, cfg.CookieSecure)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "host=db user=todo")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, SessionBackendRedis, cfg.SessionBackend)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "nats://localhost:4222", cfg.NatsURL)
}

func TestFromEnv_SecretRequiredOutsideDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsUnknownSessionBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_BACKEND", "memcached")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsNonPositiveTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "-1h")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsMalformedValues(t *testing.T) {
	for key, value := range map[string]string{
		"SESSION_TTL":   "a day",
		"COOKIE_SECURE": "sometimes",
		"REDIS_DB":      "zero",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestEnvReaders(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", " 12 ")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("HTTP_ADDR", "  :9090 ")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("COOKIE_SECURE", "1")

	n, err := envInt("REDIS_DB", 0)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	d, err := envDuration("SESSION_TTL", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = envDuration("NATS_URL", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	b, err := envBool("COOKIE_SECURE", false)
	require.NoError(t, err)
	assert.True(t, b)

	assert.Equal(t, ":9090", envString("HTTP_ADDR", ":8080"))
	assert.Equal(t, "fallback", envString("REDIS_URL", "fallback"))
	assert.Equal(t, "sqlite", envChoice("DB_DRIVER", "postgres"))
}
