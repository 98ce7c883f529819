package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *entities.Session) error {
	sessionModel := SessionModel{
		Id:        session.Id.String(),
		UserId:    session.UserId,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&sessionModel).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	var sessionModel SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&sessionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	session := &entities.Session{
		Id:        id,
		UserId:    sessionModel.UserId,
		ExpiresAt: sessionModel.ExpiresAt,
		CreatedAt: sessionModel.CreatedAt,
	}
	if session.Expired(time.Now().UTC()) {
		// Expired sessions are removed lazily
		if err := r.Delete(ctx, id); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return session, nil
}

// Delete is a no-op for unknown ids.
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id.String()).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	err := r.db.WithContext(ctx).Delete(&SessionModel{}, "expires_at < ?", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("cleanup expired sessions: %w", err)
	}
	return nil
}
