package entities

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id        uuid.UUID
	UserId    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		Id:        uuid.New(),
		UserId:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
