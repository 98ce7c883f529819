package common

import "time"

type UserResult struct {
	Id        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
