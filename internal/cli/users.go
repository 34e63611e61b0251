package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/labreserve/switch-console/internal/core/domain"
)

func newUsersCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect accounts (admin only)",
	}

	list := &cobra.Command{
		Use:         "list",
		Short:       "List every account",
		Args:        cobra.NoArgs,
		Annotations: requiresAdmin(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := unwrap(rt.app.Users.GetAll(cmd.Context()))
			if err != nil {
				return err
			}
			return rt.out.render(users, func() *table.Table { return userTable(users...) })
		},
	}

	get := &cobra.Command{
		Use:         "get <user-id>",
		Short:       "Show one account",
		Args:        cobra.ExactArgs(1),
		Annotations: requiresAdmin(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			user, err := unwrap(rt.app.Users.GetByID(cmd.Context(), id))
			if err != nil {
				return err
			}
			return rt.out.render(user, func() *table.Table { return userTable(user) })
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func userTable(users ...domain.User) *table.Table {
	t := newTable("ID", "Username", "Email", "Staff", "Active", "Joined")
	for _, u := range users {
		joined := ""
		if !u.DateJoined.IsZero() {
			joined = u.DateJoined.Format(domain.DateLayout)
		}
		t.Row(strconv.Itoa(u.ID), u.Username, u.Email, strconv.FormatBool(u.IsStaff), strconv.FormatBool(u.IsActive), joined)
	}
	return t
}
