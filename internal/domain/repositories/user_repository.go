package repositories

import (
	"context"

	"todo-service/internal/domain/entities"
)

// UserRepository returns (nil, nil) from finders when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindById(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdateUsername(ctx context.Context, id uint, username string) (*entities.User, error)
}
