package common

import "time"

type TaskResult struct {
	Id         uint      `json:"id"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
	UserId     uint      `json:"user_id"`
}
