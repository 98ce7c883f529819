package command

import (
	"strings"

	"todo-service/internal/application/common"
	"todo-service/internal/domain"
)

type UpdateAccountCommand struct {
	Username string `form:"username"`
}

type UpdateAccountCommandResult struct {
	Result *common.UserResult
}

func (c *UpdateAccountCommand) Validate() error {
	verr := domain.NewValidationError()
	c.Username = strings.TrimSpace(c.Username)
	validateUsername(verr, c.Username)
	return verr.OrNil()
}
