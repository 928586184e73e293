package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/merchantry/storefront-api/internal/api/metrics"
	"github.com/merchantry/storefront-api/internal/core/domain"
)

// Permit enforces the role policy table for one action. It must run after
// Auth. Every role check in the API goes through this middleware and the
// single domain.IsPermitted table; handlers never compare roles inline.
func Permit(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}
			if !domain.IsPermitted(principal.Role, action) {
				metrics.ForbiddenTotal.WithLabelValues(string(action)).Inc()
				// Identity is established, so naming the required
				// privilege leaks nothing.
				allowed := strings.Join(domain.RolesPermitted(action), " or ")
				return echo.NewHTTPError(http.StatusForbidden,
					string(action)+" requires "+allowed+" privileges")
			}
			return next(c)
		}
	}
}
