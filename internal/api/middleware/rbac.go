package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// RequireAdmin is the admin gate. It assumes the Session gate already ran
// and rejects any caller whose role is not admin with 403, regardless of
// the request payload.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
