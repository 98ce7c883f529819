package command

import (
	"strings"

	"todo-service/internal/application/common"
	"todo-service/internal/domain"
)

type CreateTaskCommand struct {
	Content string `form:"task_name"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult
}

func (c *CreateTaskCommand) Validate() error {
	return validateContent(c.Content)
}

type UpdateTaskCommand struct {
	Id      uint
	Content string `form:"task_name"`
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult
}

func (c *UpdateTaskCommand) Validate() error {
	return validateContent(c.Content)
}

// Content is stored as typed; only blank input is rejected.
func validateContent(content string) error {
	verr := domain.NewValidationError()
	if strings.TrimSpace(content) == "" {
		verr.Add("task_name", domain.MsgRequired)
	}
	return verr.OrNil()
}
