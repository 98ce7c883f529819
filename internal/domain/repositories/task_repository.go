package repositories

import (
	"context"

	"todo-service/internal/domain/entities"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)
	// FindById returns (nil, nil) when the task does not exist.
	FindById(ctx context.Context, id uint) (*entities.Task, error)
	// ListByUser returns the user's tasks in creation order.
	ListByUser(ctx context.Context, userID uint) ([]*entities.Task, error)
	UpdateContent(ctx context.Context, id uint, content string) (*entities.Task, error)
	Delete(ctx context.Context, id uint) error
}
