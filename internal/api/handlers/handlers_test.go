package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"enhancives/internal/api/middleware"
	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// newTestContext builds an echo context carrying the username, the way the JWT
// middleware would after verifying a token.
func newTestContext(e *echo.Echo, method, path, body, username string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if username != "" {
		req = req.WithContext(middleware.ContextWithUsername(req.Context(), username))
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newStoreWithItem(t *testing.T, username string) (repository.Store, *domain.Item) {
	t.Helper()
	store := repository.NewMemoryStore()
	item := &domain.Item{
		Username:   username,
		Name:       "mithril ring",
		Location:   "Finger",
		Permanence: domain.PermanencePersists,
		Targets: domain.TargetList{
			{Target: "Strength", Type: domain.BoostBonus, Amount: 5},
		},
	}
	require.NoError(t, store.Items().Create(item))
	return store, item
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
