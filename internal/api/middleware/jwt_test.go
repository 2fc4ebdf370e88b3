package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsernameFromContext(t *testing.T) {
	ctx := ContextWithUsername(context.Background(), "alice")
	username, err := GetUsernameFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = GetUsernameFromContext(context.Background())
	assert.Error(t, err)
}

func TestExtractUsernameFromJWT(t *testing.T) {
	e := echo.New()

	runMiddleware := func(t *testing.T, setup func(c echo.Context)) (string, error) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setup(c)

		var username string
		var extractErr error
		handler := ExtractUsernameFromJWT()(func(c echo.Context) error {
			username, extractErr = GetUsernameFromContext(c.Request().Context())
			return nil
		})
		require.NoError(t, handler(c))
		return username, extractErr
	}

	t.Run("copies username claim", func(t *testing.T) {
		token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
			"username": "alice",
		})
		username, err := runMiddleware(t, func(c echo.Context) {
			c.Set("user", token)
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("no token leaves context empty", func(t *testing.T) {
		_, err := runMiddleware(t, func(c echo.Context) {})
		assert.Error(t, err)
	})

	t.Run("missing claim leaves context empty", func(t *testing.T) {
		token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{})
		_, err := runMiddleware(t, func(c echo.Context) {
			c.Set("user", token)
		})
		assert.Error(t, err)
	})
}
