package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/application/mapper"
	"todo-service/internal/application/query"
	"todo-service/internal/domain"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
	"todo-service/internal/infrastructure"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash is compared against when the username is unknown so a
// failed login costs the same either way.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		dummyHash = h
	})
	return dummyHash
}

type AuthService struct {
	userRepo     repositories.UserRepository
	sessionRepo  repositories.SessionRepository
	tokenService *infrastructure.SessionTokenService
	sessionTTL   time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	tokenService *infrastructure.SessionTokenService,
	sessionTTL time.Duration,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		sessionTTL:   sessionTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if err := registerCommand.Validate(); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		verr := domain.NewValidationError()
		verr.Add("username", domain.MsgUsernameTaken)
		return nil, verr
	}

	newUser := entities.NewUser(registerCommand.Username, registerCommand.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	createdUser, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}

	log.Printf("Registered user %d (%s)", createdUser.Id, createdUser.Username)
	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if err := loginCommand.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(loginCommand.Password))
		log.Printf("Login failed: unknown username %q", loginCommand.Username)
		return nil, domain.ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		log.Printf("Login failed: wrong password for user %d", user.Id)
		return nil, domain.ErrInvalidCredentials
	}

	session := entities.NewSession(user.Id, s.sessionTTL)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokenService.GenerateToken(session)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// Logout always succeeds; a token that does not resolve has nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := s.tokenService.ParseToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		log.Printf("Failed to delete session %s: %v", sessionID, err)
	}
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*query.UserQueryResult, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	sessionID, err := s.tokenService.ParseToken(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.FindById(ctx, session.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *AuthService) UpdateUsername(ctx context.Context, updateCommand *command.UpdateAccountCommand) (*command.UpdateAccountCommandResult, error) {
	userID, err := domain.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := updateCommand.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if user.Username == updateCommand.Username {
		return &command.UpdateAccountCommandResult{Result: mapper.NewUserResultFromEntity(user)}, nil
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, updateCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil && existingUser.Id != userID {
		verr := domain.NewValidationError()
		verr.Add("username", domain.MsgUsernameTaken)
		return nil, verr
	}

	updatedUser, err := s.userRepo.UpdateUsername(ctx, userID, updateCommand.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	log.Printf("User %d renamed %q -> %q", userID, user.Username, updatedUser.Username)
	return &command.UpdateAccountCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*query.UserQueryResult, error) {
	userID, err := domain.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *AuthService) CleanupExpiredSessions(ctx context.Context) error {
	return s.sessionRepo.DeleteExpired(ctx)
}
