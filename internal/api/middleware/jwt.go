package middleware

import (
	"context"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ExtractUsernameFromJWT copies the username claim of the verified token into
// the request context. The username is the stable external key for all user
// data.
func ExtractUsernameFromJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok || token == nil {
				return next(c)
			}

			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return next(c)
			}

			username, ok := claims["username"].(string)
			if !ok || username == "" {
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), usernameKey, username)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
