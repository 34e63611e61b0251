package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/labreserve/switch-console/internal/api"
	"github.com/labreserve/switch-console/internal/core/ports"
)

func newServeCommand(rt *runtime) *cobra.Command {
	var (
		port            string
		shutdownTimeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web console",
		Long: `Run the web console on top of the same session and backend client the
other commands use. The server drains in-flight requests on SIGINT or SIGTERM.

Example:
  switchctl serve --port 9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = rt.app.Config.Port
			}
			return serve(cmd.Context(), rt.app, net.JoinHostPort("", port), shutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (default PORT)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "How long to wait for requests to drain")
	return cmd
}

func serve(ctx context.Context, app *App, addr string, shutdownTimeout time.Duration) error {
	log := app.Log.With().Str("component", "server").Logger()
	e := api.NewRouter(api.Deps{
		Auth:         app.Auth,
		Switches:     app.Switches,
		Reservations: app.Reservations,
		Ports:        app.Ports,
		Users:        app.Users,
		Topology:     app.Topology,
		Batch:        app.Batch,
		Guard:        app.Guard,
		Readiness:    map[string]ports.Pinger{"session": app.Sessions, "backend": app.Backend},
		Log:          log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("backend", app.Backend.BaseURL()).Msg("console listening")
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
