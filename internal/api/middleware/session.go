package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

// Authenticator reports whether a usable session is held.
type Authenticator interface {
	Authenticated() bool
}

// RequireSession rejects requests arriving before login or after teardown.
func RequireSession(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.Authenticated() {
				return domain.ErrNotAuthenticated
			}
			return next(c)
		}
	}
}
