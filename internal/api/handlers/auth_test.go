package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/api/dto"
	"enhancives/internal/repository"
)

func TestAuthHandler_SignUp(t *testing.T) {
	store := repository.NewMemoryStore()
	handler := NewAuthHandler(store, "test-key")
	e := newTestEcho()

	t.Run("creates account", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodPost, "/api/auth/signup",
			`{"username":"alice","password":"hunter2"}`, "")
		require.NoError(t, handler.SignUp(c))
		assertStatus(t, rec, http.StatusOK)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.User.Username)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodPost, "/api/auth/signup",
			`{"username":"alice","password":"other"}`, "")
		require.NoError(t, handler.SignUp(c))
		assertStatus(t, rec, http.StatusConflict)
	})

	t.Run("short username rejected", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodPost, "/api/auth/signup",
			`{"username":"al","password":"hunter2"}`, "")
		require.NoError(t, handler.SignUp(c))
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	store := repository.NewMemoryStore()
	handler := NewAuthHandler(store, "test-key")
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/api/auth/signup",
		`{"username":"alice","password":"hunter2"}`, "")
	require.NoError(t, handler.SignUp(c))
	assertStatus(t, rec, http.StatusOK)

	t.Run("valid credentials", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodPost, "/api/auth/signin",
			`{"username":"alice","password":"hunter2"}`, "")
		require.NoError(t, handler.SignIn(c))
		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("wrong password", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodPost, "/api/auth/signin",
			`{"username":"alice","password":"nope123"}`, "")
		require.NoError(t, handler.SignIn(c))
		assertStatus(t, rec, http.StatusUnauthorized)
	})
}
