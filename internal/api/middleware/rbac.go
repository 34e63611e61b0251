package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/domain"
)

const msgForbidden = "You do not have permission to perform this action."

// AdminChecker reads the cached admin flag.
type AdminChecker interface {
	IsAdmin(ctx context.Context) bool
}

// RequireAdmin admits only sessions whose admin flag is set. It runs after
// RequireAuth, so a logged-out visitor never reaches it.
func RequireAdmin(auth AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.IsAdmin(c.Request().Context()) {
				return c.JSON(http.StatusForbidden, domain.Fail[any](msgForbidden, http.StatusForbidden))
			}
			return next(c)
		}
	}
}
