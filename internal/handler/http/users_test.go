package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giancarlosisasi/task-management-api/internal/service"
	"github.com/giancarlosisasi/task-management-api/internal/store"
	"github.com/giancarlosisasi/task-management-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// register — success
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created with the persisted user and no password material in the body.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, "secret", password)
			return models.User{ID: 1, Email: email, HashedPassword: "digest", IsActive: true}, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	body := jsonBody(t, models.RegisterRequest{Email: "user@example.com", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "password")
}

// ─────────────────────────────────────────────
// register — failures
// ─────────────────────────────────────────────

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"email":"","password":""}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_EmailTaken verifies the duplicate-email response: 400 with the
// "Email already registered" detail.
func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil)
	body := jsonBody(t, models.RegisterRequest{Email: "user@example.com", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeDetail(t, rec.Body.Bytes()))
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	auth := &mockAuthService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{ID: 1, Email: "a@example.com", HashedPassword: "digest-a"},
				{ID: 2, Email: "b@example.com", HashedPassword: "digest-b"},
			}, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
	assert.NotContains(t, rec.Body.String(), "digest")
}

func TestListUsers_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, errService
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
