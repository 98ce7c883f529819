package entities

import (
	"fmt"
	"time"
)

// DateLayout renders DatePosted with microsecond precision.
const DateLayout = "2006-01-02 15:04:05.999999"

type Task struct {
	Id         uint
	Content    string
	DatePosted time.Time
	UserId     uint
}

func NewTask(content string, userID uint) *Task {
	return &Task{
		Content:    content,
		DatePosted: time.Now().UTC(),
		UserId:     userID,
	}
}

// OwnedBy reports whether userID is the task's owner.
func (t *Task) OwnedBy(userID uint) bool {
	return t.UserId == userID
}

func (t *Task) String() string {
	return fmt.Sprintf("Task('%s', '%s', '%d')", t.Content, t.DatePosted.Format(DateLayout), t.UserId)
}
