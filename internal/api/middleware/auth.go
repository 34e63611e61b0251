package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/guard"
	"github.com/labreserve/switch-console/internal/pkg/metrics"
)

// Evaluator decides a navigation. *guard.Guard implements it.
type Evaluator interface {
	Evaluate(ctx context.Context, r guard.Route) guard.Decision
}

// RequireAuth runs the route guard on every request. Logged-out visitors are
// redirected to the login page with the original path in ?next=.
func RequireAuth(g Evaluator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			decision := g.Evaluate(req.Context(), guard.Route{Path: req.URL.Path, RequiresAuth: true})
			metrics.GuardDecisionsTotal.WithLabelValues(decision.String()).Inc()

			if decision == guard.RedirectToLogin {
				code := http.StatusFound
				if req.Method != http.MethodGet && req.Method != http.MethodHead {
					code = http.StatusSeeOther
				}
				return c.Redirect(code, guard.RedirectTarget(req.URL.RequestURI()))
			}
			return next(c)
		}
	}
}
