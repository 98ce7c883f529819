package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/domain"
	"todo-service/internal/infrastructure"
	"todo-service/internal/infrastructure/db/gormdb"
	"todo-service/internal/testutil"
)

type publishedEvent struct {
	event   string
	payload TaskEvent
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{event: event, payload: payload.(TaskEvent)})
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.event)
	}
	return names
}

type fixture struct {
	auth      interfaces.AuthService
	tasks     interfaces.TaskService
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	publisher := &recordingPublisher{}
	return &fixture{
		auth: NewAuthService(
			gormdb.NewUserRepository(db),
			gormdb.NewSessionRepository(db),
			infrastructure.NewSessionTokenService("test-secret"),
			time.Hour,
		),
		tasks:     NewTaskService(gormdb.NewTaskRepository(db), publisher),
		publisher: publisher,
	}
}

var errPublish = errors.New("broker down")

// loginAs registers username and returns a context carrying its id.
func (f *fixture) loginAs(t *testing.T, username string) context.Context {
	t.Helper()
	ctx := context.Background()
	mustRegister(t, f.auth, username, "pw1")

	user, err := f.auth.Authenticate(ctx, f.token(t, username, "pw1"))
	require.NoError(t, err)
	return domain.WithUserID(ctx, user.Result.Id)
}

func (f *fixture) token(t *testing.T, username, password string) string {
	t.Helper()
	result, err := f.auth.Login(context.Background(), loginCommand(username, password))
	require.NoError(t, err)
	return result.Token
}
