package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/utils"
)

// SessionMiddleware requires a guest session bearer token and puts the
// session ID on the request context.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, ok := sessionFromHeader(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing or invalid session token"})
			}
			c.Set("sessionID", sessionID)
			return next(c)
		}
	}
}

// OptionalSession attaches the session ID when a valid token is presented
// but lets the request through either way. Used on public review reads so
// the caller's own votes can be annotated.
func OptionalSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sessionID, ok := sessionFromHeader(c); ok {
				c.Set("sessionID", sessionID)
			}
			return next(c)
		}
	}
}

func sessionFromHeader(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	claims, err := utils.ValidateSessionToken(parts[1])
	if err != nil || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}
