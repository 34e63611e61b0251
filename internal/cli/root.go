package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/guard"
	"github.com/labreserve/switch-console/internal/pkg/config"
	"github.com/labreserve/switch-console/internal/pkg/metrics"
	"github.com/labreserve/switch-console/pkg/logger"
)

// Command annotations checked before a command runs.
const (
	annotationRequiresAuth  = "requires-auth"
	annotationRequiresAdmin = "requires-admin"
)

var (
	errLoginRequired = fmt.Errorf("login required: %w", domain.ErrNotAuthenticated)
	errAdminRequired = fmt.Errorf("admin access required: %w", domain.ErrForbidden)
)

// resultError is a failed envelope surfaced as a command error.
type resultError struct {
	Message string
	Status  int
}

func (e *resultError) Error() string { return e.Message }

// unwrap returns the payload of a successful envelope.
func unwrap[T any](res domain.Result[T]) (T, error) {
	if !res.Success {
		var zero T
		return zero, &resultError{Message: res.Message, Status: res.Status}
	}
	return res.Data, nil
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	output         string
	backendURL     string
	sessionBackend string
	logLevel       string
}

type builder func(ctx context.Context, flags globalFlags) (*App, error)

// runtime is the state one invocation shares between its hooks and commands.
type runtime struct {
	build builder
	flags globalFlags
	app   *App
	out   *printer
	now   func() time.Time
}

func (rt *runtime) close(ctx context.Context) error {
	return rt.app.Close(ctx)
}

// loadApp reads the environment, applies flag overrides and builds the App.
func loadApp(ctx context.Context, flags globalFlags) (*App, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if flags.backendURL != "" {
		cfg.Backend.URL = flags.backendURL
	}
	if flags.sessionBackend != "" {
		cfg.Session.Backend = flags.sessionBackend
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && !cfg.IsProduction(),
		Service: "switchctl",
	})
	return NewApp(ctx, cfg, log)
}

// Execute runs switchctl with the process arguments.
func Execute(ctx context.Context) error {
	root, rt := newRootCommand(loadApp)
	defer func() { _ = rt.close(context.WithoutCancel(ctx)) }()
	return root.ExecuteContext(ctx)
}

func newRootCommand(build builder) (*cobra.Command, *runtime) {
	rt := &runtime{build: build, now: time.Now}

	root := &cobra.Command{
		Use:   "switchctl",
		Short: "Reserve lab switches and wire their ports",
		Long: `switchctl talks to the switch reservation backend.

Log in once; the session is kept locally (see SESSION_BACKEND) and reused by
every later command until you log out.

Examples:
  switchctl login -u alice
  switchctl switches list
  switchctl switches reserve 3 --until 2026-03-01
  switchctl ports connect 12 40`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.before,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&rt.flags.output, "output", "o", formatTable, "Output format: table, json or yaml")
	pf.StringVar(&rt.flags.backendURL, "backend-url", "", "Backend base URL (overrides BACKEND_URL)")
	pf.StringVar(&rt.flags.sessionBackend, "session-backend", "", "Session store: file, memory, redis or mongo (overrides SESSION_BACKEND)")
	pf.StringVar(&rt.flags.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newLoginCommand(rt),
		newSignupCommand(rt),
		newLogoutCommand(rt),
		newStatusCommand(rt),
		newSwitchesCommand(rt),
		newReservationsCommand(rt),
		newPortsCommand(rt),
		newUsersCommand(rt),
		newTopologyCommand(rt),
		newDatesCommand(rt),
		newServeCommand(rt),
	)
	return root, rt
}

// before builds the App once and runs the route guard for annotated
// commands.
func (rt *runtime) before(cmd *cobra.Command, _ []string) error {
	out, err := newPrinter(cmd.OutOrStdout(), rt.flags.output)
	if err != nil {
		return err
	}
	rt.out = out

	ctx := cmd.Context()
	if rt.app == nil {
		app, err := rt.build(ctx, rt.flags)
		if err != nil {
			return err
		}
		rt.app = app
	}

	if cmd.Annotations[annotationRequiresAuth] == "true" {
		decision := rt.app.Guard.Evaluate(ctx, guard.Route{Path: cmd.CommandPath(), RequiresAuth: true})
		metrics.GuardDecisionsTotal.WithLabelValues(decision.String()).Inc()
		if decision == guard.RedirectToLogin {
			return errLoginRequired
		}
	}
	if cmd.Annotations[annotationRequiresAdmin] == "true" && !rt.app.Auth.IsAdmin(ctx) {
		return errAdminRequired
	}
	return nil
}

func requiresAuth() map[string]string {
	return map[string]string{annotationRequiresAuth: "true"}
}

func requiresAdmin() map[string]string {
	return map[string]string{annotationRequiresAuth: "true", annotationRequiresAdmin: "true"}
}

func parseID(what, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", what, s)
	}
	return id, nil
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	var re *resultError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrNotAuthenticated):
		return 3
	case errors.Is(err, domain.ErrForbidden):
		return 4
	case errors.As(err, &re):
		return 5
	default:
		return 1
	}
}
