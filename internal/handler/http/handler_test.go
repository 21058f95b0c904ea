package http

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/internal/service"
	"github.com/giancarlosisasi/task-management-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, email string, password string) (models.User, error)
	authenticateFn func(ctx context.Context, email string, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	resolveUserFn  func(ctx context.Context, tokenString string) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, email string, password string) (models.User, error) {
	return m.registerUserFn(ctx, email, password)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email string, password string) (models.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	return m.resolveUserFn(ctx, tokenString)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Mock TaskService
// ─────────────────────────────────────────────

// mockTaskService implements service.TaskService for unit tests.
type mockTaskService struct {
	createFn func(ctx context.Context, input models.TaskInput, owner *models.User) (models.Task, error)
	listFn   func(ctx context.Context, caller *models.User) ([]models.Task, error)
	getFn    func(ctx context.Context, id int64) (models.Task, error)
	updateFn func(ctx context.Context, id int64, input models.TaskInput) (models.Task, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTaskService) Create(ctx context.Context, input models.TaskInput, owner *models.User) (models.Task, error) {
	return m.createFn(ctx, input, owner)
}

func (m *mockTaskService) List(ctx context.Context, caller *models.User) ([]models.Task, error) {
	return m.listFn(ctx, caller)
}

func (m *mockTaskService) Get(ctx context.Context, id int64) (models.Task, error) {
	return m.getFn(ctx, id)
}

func (m *mockTaskService) Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error) {
	return m.updateFn(ctx, id, input)
}

func (m *mockTaskService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Either mock
// may be nil when the test only exercises the other service.
func newTestHandler(t *testing.T, auth service.AuthService, tasks service.TaskService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		TaskService: tasks,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// errService stands in for unexpected failures below the transport layer.
var errService = errors.New("service error")

// decodeDetail extracts the "detail" field from an error response body.
func decodeDetail(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Detail
}
