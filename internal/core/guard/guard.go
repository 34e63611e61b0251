// Package guard decides whether a navigation may proceed given the current
// session. Every evaluation reads the session afresh; nothing is cached.
package guard

import (
	"context"
	"net/url"
)

// LoginPath is where unauthenticated navigations are sent.
const LoginPath = "/login"

// Decision is the outcome of one navigation attempt.
type Decision int

const (
	Allowed Decision = iota
	RedirectToLogin
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case RedirectToLogin:
		return "redirected-to-login"
	default:
		return "unknown"
	}
}

// Route is a navigation target.
type Route struct {
	Path         string
	RequiresAuth bool
}

// Authenticator reports whether a session token is present.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

type Guard struct {
	auth Authenticator
}

func New(auth Authenticator) *Guard {
	return &Guard{auth: auth}
}

// Evaluate redirects only when the route requires auth and no token is held.
func (g *Guard) Evaluate(ctx context.Context, r Route) Decision {
	if r.RequiresAuth && !g.auth.IsAuthenticated(ctx) {
		return RedirectToLogin
	}
	return Allowed
}

// RedirectTarget is the login URL that returns to path after signing in.
func RedirectTarget(path string) string {
	if path == "" || path == LoginPath {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(path)
}
