package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/pkg/metrics"
)

type credentialFlags struct {
	username      string
	passwordStdin bool
}

func (f *credentialFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "Account username (prompted when empty)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "Read the password from stdin")
}

func newLoginCommand(rt *runtime) *cobra.Command {
	var flags credentialFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := readCredentials(cmd.InOrStdin(), flags.username, flags.passwordStdin)
			if err != nil {
				return err
			}
			res := rt.app.Auth.Login(cmd.Context(), creds.Username, creds.Password)
			metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Outcome(res.Success)).Inc()
			account, err := unwrap(res)
			if err != nil {
				return err
			}
			return rt.out.render(account, func() *table.Table { return accountTable(account) })
		},
	}
	flags.bind(cmd)
	return cmd
}

func newSignupCommand(rt *runtime) *cobra.Command {
	var flags credentialFlags
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in with it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := readCredentials(cmd.InOrStdin(), flags.username, flags.passwordStdin)
			if err != nil {
				return err
			}
			res := rt.app.Auth.Signup(cmd.Context(), creds.Username, creds.Password)
			metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.Outcome(res.Success)).Inc()
			account, err := unwrap(res)
			if err != nil {
				return err
			}
			return rt.out.render(account, func() *table.Table { return accountTable(account) })
		},
	}
	flags.bind(cmd)
	return cmd
}

func newLogoutCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out; the local session is cleared even if the backend refuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := rt.app.Auth.Logout(cmd.Context())
			metrics.SessionClearsTotal.Inc()
			msg, err := unwrap(res)
			if err != nil {
				rt.out.warn("Local session cleared.")
				return err
			}
			return rt.out.message(msg)
		},
	}
}

type statusDoc struct {
	Authenticated  bool   `json:"authenticated"   yaml:"authenticated"`
	UserID         string `json:"user_id"         yaml:"user_id"`
	IsAdmin        bool   `json:"is_admin"        yaml:"is_admin"`
	Backend        string `json:"backend"         yaml:"backend"`
	SessionBackend string `json:"session_backend" yaml:"session_backend"`
}

func newStatusCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.app.Sessions.Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}
			doc := statusDoc{
				Authenticated:  sess.IsAuthenticated(),
				UserID:         sess.UserID,
				IsAdmin:        sess.IsAdmin,
				Backend:        rt.app.Backend.BaseURL(),
				SessionBackend: rt.app.Config.Session.Backend,
			}
			return rt.out.render(doc, func() *table.Table {
				return newTable("Field", "Value").Rows(
					[]string{"Authenticated", strconv.FormatBool(doc.Authenticated)},
					[]string{"User", doc.UserID},
					[]string{"Admin", strconv.FormatBool(doc.IsAdmin)},
					[]string{"Backend", doc.Backend},
					[]string{"Session store", doc.SessionBackend},
				)
			})
		},
	}
}

func accountTable(a domain.Account) *table.Table {
	return newTable("User", "Admin").Row(a.UserID, strconv.FormatBool(a.IsAdmin))
}
