package gormdb

import (
	"time"
)

type UserModel struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"size:20;uniqueIndex;not null"`
	Password  string `gorm:"size:60;not null"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type TaskModel struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	Content    string    `gorm:"type:text;not null"`
	DatePosted time.Time `gorm:"not null"`
	UserId     uint      `gorm:"index;not null"`
	// Only declared so AutoMigrate emits the foreign key; never loaded.
	User UserModel `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

type SessionModel struct {
	Id        string    `gorm:"primaryKey;size:36"`
	UserId    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	User      UserModel `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
