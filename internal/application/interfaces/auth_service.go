package interfaces

import (
	"context"

	"todo-service/internal/application/command"
	"todo-service/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*query.UserQueryResult, error)
	UpdateUsername(ctx context.Context, updateCommand *command.UpdateAccountCommand) (*command.UpdateAccountCommandResult, error)
	CurrentUser(ctx context.Context) (*query.UserQueryResult, error)
	CleanupExpiredSessions(ctx context.Context) error
}
