package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ibraschwan/karagul/internal/infrastructure/session"
)

// Session assigns each browser a session-id cookie and threads the id
// through the request context, where the session store and the backend
// client's token hook pick it up.
func Session(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
				sid = ck.Value
			} else {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(session.WithID(req.Context(), sid)))
			return next(c)
		}
	}
}
