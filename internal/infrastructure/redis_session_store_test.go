package infrastructure

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo-service/internal/domain/entities"
)

func newTestRedisStore(t *testing.T) *RedisSessionStore {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := NewRedisClient(context.Background(), RedisConfig{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionStore(client).(*RedisSessionStore)
}

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	session := entities.NewSession(5, time.Minute)
	require.NoError(t, store.Create(ctx, session))

	found, err := store.Find(ctx, session.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, uint(5), found.UserId)

	ttl, err := store.client.TTL(ctx, sessionKeyPrefix+session.Id.String()).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	require.NoError(t, store.Delete(ctx, session.Id))
	found, err = store.Find(ctx, session.Id)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, store.DeleteExpired(ctx))
}

func TestRedisSessionStore_UnknownAndExpired(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	found, err := store.Find(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)

	expired := entities.NewSession(5, time.Minute)
	expired.ExpiresAt = time.Now().Add(-time.Second)
	assert.Error(t, store.Create(ctx, expired))
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), RedisConfig{URL: "://nope"})
	assert.Error(t, err)
}
