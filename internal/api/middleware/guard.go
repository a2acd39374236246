package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/service"
)

// Guard enforces authentication and role requirements on protected routes.
// Failures surface as the domain guard errors; the central error handler
// translates them into 401/403 responses.
type Guard struct {
	auth *service.AuthService
}

func NewGuard(auth *service.AuthService) *Guard {
	return &Guard{auth: auth}
}

// RequireAuth rejects anonymous sessions and injects the current user into
// the echo context under "user".
func (g *Guard) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := g.auth.RequireAuth(c.Request().Context())
			if err != nil {
				return err
			}
			c.Set("user", user)
			return next(c)
		}
	}
}

// RequireRole admits only sessions whose user carries one of the given roles.
func (g *Guard) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := g.auth.CurrentUser(c.Request().Context())
			if user == nil {
				return domain.ErrUnauthenticated
			}
			for _, r := range roles {
				if user.HasRole(r) {
					c.Set("user", user)
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}
