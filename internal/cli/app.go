// Package cli is the switchctl command tree. Every command runs against one
// App: a single session, one backend client and the services built on them.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/guard"
	"github.com/labreserve/switch-console/internal/core/ports"
	"github.com/labreserve/switch-console/internal/core/service"
	"github.com/labreserve/switch-console/internal/infrastructure/backend"
	"github.com/labreserve/switch-console/internal/infrastructure/queue"
	"github.com/labreserve/switch-console/internal/infrastructure/session"
	"github.com/labreserve/switch-console/internal/pkg/config"
)

// App wires the services a command needs.
type App struct {
	Config   *config.Config
	Log      zerolog.Logger
	Sessions *service.SessionManager
	Backend  *backend.Client
	Guard    *guard.Guard
	Batch    ports.Batcher

	Auth         ports.AuthService
	Switches     ports.SwitchService
	Reservations ports.ReservationService
	Ports        ports.PortService
	Users        ports.UserService
	Topology     ports.TopologyService

	closeStore session.Closer
}

// NewApp opens the configured session store and builds the backend client
// on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, closer, err := session.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	sessions := service.NewSessionManager(store, log.With().Str("component", "session").Logger())
	client, err := backend.New(backend.Options{
		BaseURL:     cfg.Backend.URL,
		CSRFCookie:  cfg.Backend.CSRFCookieName(),
		InsecureTLS: cfg.Backend.InsecureTLS,
		Timeout:     cfg.Backend.Timeout,
	}, sessions, log.With().Str("component", "backend").Logger())
	if err != nil {
		_ = closer(ctx)
		return nil, err
	}

	app := assemble(cfg, log, sessions, client)
	app.closeStore = closer
	return app, nil
}

func assemble(cfg *config.Config, log zerolog.Logger, sessions *service.SessionManager, client *backend.Client) *App {
	svcLog := log.With().Str("component", "service").Logger()
	return &App{
		Config:       cfg,
		Log:          log,
		Sessions:     sessions,
		Backend:      client,
		Guard:        guard.New(sessions),
		Batch:        queue.NewBatch(queue.NewPool(cfg.BatchWorkers), log.With().Str("component", "batch").Logger()),
		Auth:         service.NewAuthService(client, sessions, svcLog),
		Switches:     service.NewSwitchService(client, svcLog),
		Reservations: service.NewReservationService(client),
		Ports:        service.NewPortService(client, svcLog),
		Users:        service.NewUserService(client),
		Topology:     service.NewTopologyService(client, svcLog),
	}
}

// Close releases the session store connection, if any.
func (a *App) Close(ctx context.Context) error {
	if a == nil || a.closeStore == nil {
		return nil
	}
	return a.closeStore(ctx)
}
