package command

import (
	"strings"
	"unicode/utf8"

	"todo-service/internal/application/common"
	"todo-service/internal/domain"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 10

	// bcrypt refuses longer inputs.
	PasswordMaxBytes = 72
)

type RegisterUserCommand struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult
}

// Validate trims the username in place and checks every field.
func (c *RegisterUserCommand) Validate() error {
	verr := domain.NewValidationError()

	c.Username = strings.TrimSpace(c.Username)
	validateUsername(verr, c.Username)

	if c.Password == "" {
		verr.Add("password", domain.MsgRequired)
	} else if len(c.Password) > PasswordMaxBytes {
		verr.Add("password", domain.MsgPasswordLong)
	}
	if c.ConfirmPassword == "" {
		verr.Add("confirm_password", domain.MsgRequired)
	} else if c.ConfirmPassword != c.Password {
		verr.Add("confirm_password", domain.MsgPasswordMatch)
	}

	return verr.OrNil()
}

func validateUsername(verr *domain.ValidationError, username string) {
	if username == "" {
		verr.Add("username", domain.MsgRequired)
		return
	}
	if n := utf8.RuneCountInString(username); n < UsernameMinLength || n > UsernameMaxLength {
		verr.Add("username", domain.MsgUsernameRange)
	}
}
