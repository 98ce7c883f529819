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

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	userModel := UserModel{
		CreatedAt: user.CreatedAt,
		Username:  user.Username,
		Password:  user.Password,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, usernameTaken()
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Read back the created user to ensure data integrity
	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id uint, username string) (*entities.User, error) {
	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("username", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, usernameTaken()
		}
		return nil, fmt.Errorf("update user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.FindById(ctx, id)
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		Username:  userModel.Username,
		Password:  userModel.Password,
	}
}

func usernameTaken() error {
	verr := domain.NewValidationError()
	verr.Add("username", domain.MsgUsernameTaken)
	return verr
}
