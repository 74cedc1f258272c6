package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/application/auth/dto"
	"stratplan/internal/application/auth/usecases"
	"stratplan/internal/domain/access"
	"stratplan/internal/interfaces/http/handlers/testutil"
	"stratplan/internal/shared/errors"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	loginUC := &mockExec[usecases.LoginCommand, *dto.LoginDTO]{
		result: &dto.LoginDTO{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600},
	}
	handler := NewAuthHandler(loginUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Username: "hana", Password: "secret"})
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hana", loginUC.got.Username)
	assert.NotEmpty(t, loginUC.got.IPAddress)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var got dto.LoginDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "tok", got.AccessToken)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	loginUC := &mockExec[usecases.LoginCommand, *dto.LoginDTO]{}
	handler := NewAuthHandler(loginUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{"username": "hana"})
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, loginUC.called)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	loginUC := &mockExec[usecases.LoginCommand, *dto.LoginDTO]{err: errors.NewInvalidCredentialsError()}
	handler := NewAuthHandler(loginUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Username: "hana", Password: "wrong"})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
}

func TestAuthHandler_Check(t *testing.T) {
	sessionUC := &mockExec[access.Principal, *dto.SessionDTO]{
		result: &dto.SessionDTO{IsAuthenticated: true, User: &dto.UserDTO{ID: 4, Username: "hana"}},
	}
	handler := NewAuthHandler(nil, sessionUC, testutil.NewMockLogger())

	t.Run("authenticated", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/check", nil)
		testutil.SetAuthContext(c, 4, "hana")
		handler.Check(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(4), sessionUC.got.UserID)
	})

	t.Run("no principal", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/check", nil)
		handler.Check(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
