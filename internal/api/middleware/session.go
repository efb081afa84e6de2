package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// CookieName is the session cookie shared by the auth handler and the
// authentication gate.
const CookieName = "helpdesk_session"

// Context keys populated by the Session middleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Session is the authentication gate: it resolves the session cookie and
// injects the caller's identity into context. Requests without a valid,
// unexpired session are rejected with 401 before any handler logic runs.
// The gate never mutates session state.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			session, err := sessions.Load(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(ContextUserID, session.UserID)
			c.Set(ContextRole, session.Role)

			return next(c)
		}
	}
}
