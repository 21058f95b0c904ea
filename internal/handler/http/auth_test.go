package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/giancarlosisasi/task-management-api/internal/service"
	"github.com/giancarlosisasi/task-management-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginRequest builds a form-encoded POST /token request.
func loginRequest(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ─────────────────────────────────────────────
// login — success
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials yield 200 OK and a bearer
// token response body.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, "secret", password)
			return models.User{ID: 1, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.login(rec, loginRequest("user@example.com", "secret"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

// ─────────────────────────────────────────────
// login — invalid credentials
// ─────────────────────────────────────────────

// TestLogin_InvalidCredentials verifies that authentication failures result
// in 401 Unauthorized with the generic detail message.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.login(rec, loginRequest("user@example.com", "wrong"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "incorrect email or password", decodeDetail(t, rec.Body.Bytes()))
}

// ─────────────────────────────────────────────
// login — token creation failure
// ─────────────────────────────────────────────

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.login(rec, loginRequest("user@example.com", "secret"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
