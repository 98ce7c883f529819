package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"todo-service/internal/application/services"
	"todo-service/internal/infrastructure"
	"todo-service/internal/infrastructure/db/gormdb"
	"todo-service/internal/infrastructure/messaging"
	"todo-service/internal/testutil"
)

type testServer struct {
	srv *httptest.Server
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewTestDB(t)

	authService := services.NewAuthService(
		gormdb.NewUserRepository(db),
		gormdb.NewSessionRepository(db),
		infrastructure.NewSessionTokenService("test-secret"),
		time.Hour,
	)
	taskService := services.NewTaskService(gormdb.NewTaskRepository(db), messaging.NoopPublisher{})

	app, err := New(Options{
		AuthService: authService,
		TaskService: taskService,
		HealthCheck: func(ctx context.Context) error { return gormdb.Ping(ctx, db) },
		SessionTTL:  time.Hour,
		InfoLog:     log.New(io.Discard, "", 0),
		ErrorLog:    log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(app.Routes())
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, db: db}
}

type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

// client returns a browser-like client with its own cookie jar that follows redirects.
func (ts *testServer) client(t *testing.T) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, base: ts.srv.URL, client: &http.Client{Jar: jar}}
}

func (c *testClient) do(req *http.Request) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(body)
}

func (c *testClient) get(path string) (*http.Response, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	require.NoError(c.t, err)
	return c.do(req)
}

func (c *testClient) post(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *testClient) register(username, password string) string {
	c.t.Helper()
	_, body := c.post("/register", url.Values{
		"username":         {username},
		"password":         {password},
		"confirm_password": {password},
	})
	return body
}

func (c *testClient) login(username, password string) string {
	c.t.Helper()
	_, body := c.post("/login", url.Values{
		"username": {username},
		"password": {password},
	})
	return body
}

func (c *testClient) signUpAndLogin(username, password string) {
	c.t.Helper()
	c.register(username, password)
	body := c.login(username, password)
	require.Contains(c.t, body, "Login Successfull.")
}

func (c *testClient) addTask(content string) string {
	c.t.Helper()
	_, body := c.post("/add_task", url.Values{"task_name": {content}})
	return body
}

func (ts *testServer) taskID(t *testing.T, content string) uint {
	t.Helper()
	var task gormdb.TaskModel
	require.NoError(t, ts.db.Where("content = ?", content).First(&task).Error)
	return task.Id
}
