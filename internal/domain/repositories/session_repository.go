package repositories

import (
	"context"

	"github.com/google/uuid"
	"todo-service/internal/domain/entities"
)

// SessionRepository stores server-side login sessions.
// Find returns (nil, nil) for unknown or expired sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entities.Session) error
	Find(ctx context.Context, id uuid.UUID) (*entities.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}
