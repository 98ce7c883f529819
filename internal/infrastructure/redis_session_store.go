package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

const sessionKeyPrefix = "session:"

type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient connects using URL when set, otherwise host/port.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	log.Printf("Connected to Redis at %s", opts.Addr)
	return client, nil
}

type redisSession struct {
	UserId    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisSessionStore keeps sessions as JSON values expiring with the session.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) repositories.SessionRepository {
	return &RedisSessionStore{client: client}
}

func (r *RedisSessionStore) Create(ctx context.Context, session *entities.Session) error {
	data, err := json.Marshal(redisSession{
		UserId:    session.UserId,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.Id)
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.Id.String(), data, ttl).Err()
}

func (r *RedisSessionStore) Find(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var stored redisSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	session := &entities.Session{
		Id:        id,
		UserId:    stored.UserId,
		ExpiresAt: stored.ExpiresAt,
		CreatedAt: stored.CreatedAt,
	}
	if session.Expired(time.Now().UTC()) {
		return nil, nil
	}
	return session, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, sessionKeyPrefix+id.String()).Err()
}

// DeleteExpired is a no-op: keys carry their own TTL.
func (r *RedisSessionStore) DeleteExpired(ctx context.Context) error {
	return nil
}
