package command

import (
	"strings"

	"todo-service/internal/application/common"
	"todo-service/internal/domain"
)

type LoginUserCommand struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type LoginUserCommandResult struct {
	Token string
	User  *common.UserResult
}

func (c *LoginUserCommand) Validate() error {
	verr := domain.NewValidationError()

	c.Username = strings.TrimSpace(c.Username)
	if c.Username == "" {
		verr.Add("username", domain.MsgRequired)
	}
	if c.Password == "" {
		verr.Add("password", domain.MsgRequired)
	}
	return verr.OrNil()
}
