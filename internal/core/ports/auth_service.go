package ports

import (
	"context"

	"github.com/labreserve/switch-console/internal/core/domain"
)

// AuthService logs users in and out against the backend and keeps the local
// session in step.
type AuthService interface {
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	Login(ctx context.Context, username, password string) domain.Result[domain.Account]
	Signup(ctx context.Context, username, password string) domain.Result[domain.Account]
	// Logout always clears the local session, whatever the backend says.
	Logout(ctx context.Context) domain.Result[string]
}
