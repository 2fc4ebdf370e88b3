package middleware

import (
	"context"
	"errors"
)

type contextKey string

const usernameKey contextKey = "username"

var errUnauthorized = errors.New("unauthorized")

// ContextWithUsername returns a new context with the given username set.
// This is intended for use in tests and middleware.
func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

func GetUsernameFromContext(ctx context.Context) (string, error) {
	v := ctx.Value(usernameKey)
	if v == nil {
		return "", errUnauthorized
	}

	username, ok := v.(string)
	if !ok || username == "" {
		return "", errUnauthorized
	}
	return username, nil
}
