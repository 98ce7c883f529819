package services

import (
	"context"
	"log"
	"time"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/application/mapper"
	"todo-service/internal/application/query"
	"todo-service/internal/domain"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

const (
	EventTaskCreated = "created"
	EventTaskUpdated = "updated"
	EventTaskDeleted = "deleted"
)

type TaskEvent struct {
	TaskId     uint      `json:"task_id"`
	UserId     uint      `json:"user_id"`
	Content    string    `json:"content"`
	OccurredAt time.Time `json:"occurred_at"`
}

type TaskService struct {
	taskRepo  repositories.TaskRepository
	publisher interfaces.EventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher interfaces.EventPublisher) interfaces.TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	userID, err := domain.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := createCommand.Validate(); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Create(ctx, entities.NewTask(createCommand.Content, userID))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventTaskCreated, task)
	return &command.CreateTaskCommandResult{Result: mapper.NewTaskResultFromEntity(task)}, nil
}

func (s *TaskService) ListTasks(ctx context.Context) (*query.TaskQueryListResult, error) {
	userID, err := domain.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &query.TaskQueryListResult{Result: mapper.NewTaskResultsFromEntities(tasks)}, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*query.TaskQueryResult, error) {
	task, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	return &query.TaskQueryResult{Result: mapper.NewTaskResultFromEntity(task)}, nil
}

// UpdateTask overwrites content unconditionally; concurrent edits are last write wins.
func (s *TaskService) UpdateTask(ctx context.Context, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	task, err := s.findOwned(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if err := updateCommand.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.UpdateContent(ctx, task.Id, updateCommand.Content)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventTaskUpdated, updated)
	return &command.UpdateTaskCommandResult{Result: mapper.NewTaskResultFromEntity(updated)}, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	task, err := s.findOwned(ctx, id)
	if err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, task.Id); err != nil {
		return err
	}

	s.publish(ctx, EventTaskDeleted, task)
	return nil
}

func (s *TaskService) findOwned(ctx context.Context, id uint) (*entities.Task, error) {
	userID, err := domain.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		log.Printf("Task %d not found (user %d)", id, userID)
		return nil, domain.ErrNotFound
	}
	if !task.OwnedBy(userID) {
		log.Printf("User %d denied access to task %d owned by user %d", userID, id, task.UserId)
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) publish(ctx context.Context, event string, task *entities.Task) {
	if s.publisher == nil {
		return
	}
	payload := TaskEvent{
		TaskId:     task.Id,
		UserId:     task.UserId,
		Content:    task.Content,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event, payload); err != nil {
		log.Printf("Failed to publish task %s event for task %d: %v", event, task.Id, err)
	}
}
