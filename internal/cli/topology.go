package cli

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/labreserve/switch-console/internal/core/domain"
)

func newPortsCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ports",
		Aliases: []string{"port"},
		Short:   "List ports and connect or disconnect pairs of them",
	}

	var switchID int
	list := &cobra.Command{
		Use:         "list",
		Short:       "List ports, optionally for one switch",
		Args:        cobra.NoArgs,
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var res domain.Result[[]domain.Port]
			if switchID > 0 {
				res = rt.app.Ports.GetBySwitch(cmd.Context(), switchID)
			} else {
				res = rt.app.Ports.GetAll(cmd.Context())
			}
			portList, err := unwrap(res)
			if err != nil {
				return err
			}
			return rt.out.render(portList, func() *table.Table { return portTable(portList) })
		},
	}
	list.Flags().IntVar(&switchID, "switch", 0, "Only list the ports of this switch")

	cmd.AddCommand(list, newLinkCommand(rt, "connect"), newLinkCommand(rt, "disconnect"))
	return cmd
}

// newLinkCommand builds connect and disconnect, which differ only in the
// service call.
func newLinkCommand(rt *runtime, action string) *cobra.Command {
	short := "Connect two ports"
	if action == "disconnect" {
		short = "Disconnect two ports"
	}
	return &cobra.Command{
		Use:         action + " <port-a> <port-b>",
		Short:       short,
		Args:        cobra.ExactArgs(2),
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseID("port id", args[0])
			if err != nil {
				return err
			}
			b, err := parseID("port id", args[1])
			if err != nil {
				return err
			}
			if a == b {
				return errors.New("port-a and port-b must differ")
			}

			link := rt.app.Ports.Connect
			if action == "disconnect" {
				link = rt.app.Ports.Disconnect
			}
			msg, err := unwrap(link(cmd.Context(), a, b))
			if err != nil {
				return err
			}
			return rt.out.message(msg)
		},
	}
}

func portTable(list []domain.Port) *table.Table {
	t := newTable("ID", "Switch", "Port", "Backbone", "Backbone port", "SVLAN", "Status")
	for _, p := range list {
		svlan := "-"
		if p.Connected() {
			svlan = strconv.Itoa(*p.SVLAN)
		}
		t.Row(strconv.Itoa(p.ID), strconv.Itoa(p.Switch), p.PortSwitch, p.Backbone, p.PortBackbone, svlan, p.Status)
	}
	return t
}

func newTopologyCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Share your topology with other users",
	}

	share := &cobra.Command{
		Use:         "share <username>",
		Short:       "Share your topology with a user",
		Args:        cobra.ExactArgs(1),
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := unwrap(rt.app.Topology.Share(cmd.Context(), args[0]))
			if err != nil {
				return err
			}
			return rt.out.message(msg)
		},
	}

	list := &cobra.Command{
		Use:         "list",
		Short:       "List topology shares",
		Args:        cobra.NoArgs,
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			shares, err := unwrap(rt.app.Topology.GetShared(cmd.Context()))
			if err != nil {
				return err
			}
			now := rt.now()
			return rt.out.render(shares, func() *table.Table {
				t := newTable("ID", "Owner", "Target", "Created")
				for _, s := range shares {
					t.Row(strconv.Itoa(s.ID), nameOr(s.OwnerUsername, s.Owner), nameOr(s.TargetUsername, s.Target),
						domain.FormatWithRelative(s.CreatedAt, now))
				}
				return t
			})
		},
	}

	unshare := &cobra.Command{
		Use:         "unshare <share-id>",
		Short:       "Revoke a topology share",
		Args:        cobra.ExactArgs(1),
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("share id", args[0])
			if err != nil {
				return err
			}
			msg, err := unwrap(rt.app.Topology.Unshare(cmd.Context(), id))
			if err != nil {
				return err
			}
			return rt.out.message(msg)
		},
	}

	cmd.AddCommand(share, list, unshare)
	return cmd
}

func nameOr(name string, id int) string {
	if name != "" {
		return name
	}
	return strconv.Itoa(id)
}
