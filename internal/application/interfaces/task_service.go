package interfaces

import (
	"context"

	"todo-service/internal/application/command"
	"todo-service/internal/application/query"
)

// TaskService operations act on behalf of the user id carried in ctx.
type TaskService interface {
	CreateTask(ctx context.Context, createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	ListTasks(ctx context.Context) (*query.TaskQueryListResult, error)
	GetTask(ctx context.Context, id uint) (*query.TaskQueryResult, error)
	UpdateTask(ctx context.Context, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteTask(ctx context.Context, id uint) error
}
