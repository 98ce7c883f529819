package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"todo-service/internal/domain"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	taskModel := TaskModel{
		Content:    task.Content,
		DatePosted: task.DatePosted,
		UserId:     task.UserId,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&taskModel).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) FindById(ctx context.Context, id uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&taskModels).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks of user %d: %w", userID, err)
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, r.mapToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateContent(ctx context.Context, id uint, content string) (*entities.Task, error) {
	result := r.db.WithContext(ctx).Model(&TaskModel{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, fmt.Errorf("update task %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.FindById(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete task %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		Id:         taskModel.Id,
		Content:    taskModel.Content,
		DatePosted: taskModel.DatePosted,
		UserId:     taskModel.UserId,
	}
}
