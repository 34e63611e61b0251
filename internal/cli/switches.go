package cli

import (
	"context"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
)

func newSwitchesCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switches",
		Aliases: []string{"switch", "sw"},
		Short:   "List, reserve and release switches",
	}
	cmd.AddCommand(newSwitchesListCommand(rt), newReserveCommand(rt), newReleaseCommand(rt))
	return cmd
}

func newSwitchesListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List every switch",
		Args:        cobra.NoArgs,
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			switches, err := unwrap(rt.app.Switches.GetAll(cmd.Context()))
			if err != nil {
				return err
			}
			return rt.out.render(switches, func() *table.Table {
				t := newTable("ID", "Management IP", "Model", "Console", "Serial")
				for _, s := range switches {
					t.Row(strconv.Itoa(s.ID), s.ManagementIP, s.Model, s.Console, s.SerialNumber)
				}
				return t
			})
		},
	}
}

func newReserveCommand(rt *runtime) *cobra.Command {
	var (
		until     string
		exclusive bool
	)
	cmd := &cobra.Command{
		Use:         "reserve <switch-id>",
		Short:       "Reserve a switch until a date (default: one week from today)",
		Args:        cobra.ExactArgs(1),
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("switch id", args[0])
			if err != nil {
				return err
			}
			window := domain.ReservationWindowAt(rt.now())
			if until == "" {
				until = domain.FormatForInput(window.Default)
			}
			if _, err := window.ParseEndDate(until); err != nil {
				return err
			}
			msg, err := unwrap(rt.app.Switches.Reserve(cmd.Context(), ports.ReserveInput{
				SwitchID:  id,
				EndDate:   until,
				Exclusive: exclusive,
			}))
			if err != nil {
				return err
			}
			return rt.out.message(msg)
		},
	}
	cmd.Flags().StringVar(&until, "until", "", "End date, YYYY-MM-DD, between tomorrow and 21 days out")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Fail if someone else already holds the switch")
	return cmd
}

func newReleaseCommand(rt *runtime) *cobra.Command {
	var cleanup bool
	cmd := &cobra.Command{
		Use:         "release <switch-id>",
		Short:       "Release a reserved switch",
		Args:        cobra.ExactArgs(1),
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("switch id", args[0])
			if err != nil {
				return err
			}
			msg, err := unwrap(rt.app.Switches.Release(cmd.Context(), id, cleanup))
			if err != nil {
				return err
			}
			return rt.out.message(msg)
		},
	}
	cmd.Flags().BoolVar(&cleanup, "cleanup", false, "Disconnect the switch's ports as part of the release")
	return cmd
}

// reservationRow is a reservation joined with its switch.
type reservationRow struct {
	domain.Reservation `yaml:",inline"`
	ManagementIP       string `json:"mngt_IP,omitempty" yaml:"management_ip,omitempty"`
}

func newReservationsCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"reservation", "res"},
		Short:   "Inspect reservations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:         "list",
		Short:       "List reservations with their switch and expiry",
		Args:        cobra.NoArgs,
		Annotations: requiresAuth(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := rt.app.Batch.Run(cmd.Context(),
				func(ctx context.Context) domain.Result[any] { return rt.app.Reservations.GetAll(ctx).Any() },
				func(ctx context.Context) domain.Result[any] { return rt.app.Switches.GetAll(ctx).Any() },
			)
			data, err := unwrap(results[0])
			if err != nil {
				return err
			}
			reservations, _ := data.([]domain.Reservation)

			ips := map[int]string{}
			if switches, ok := results[1].Data.([]domain.Switch); results[1].Success && ok {
				for _, s := range switches {
					ips[s.ID] = s.ManagementIP
				}
			} else {
				rt.out.warn("Switch details unavailable: " + results[1].Message)
			}

			rows := make([]reservationRow, 0, len(reservations))
			for _, r := range reservations {
				rows = append(rows, reservationRow{Reservation: r, ManagementIP: ips[r.Switch]})
			}

			now := rt.now()
			return rt.out.render(rows, func() *table.Table {
				t := newTable("ID", "Switch", "Management IP", "User", "Created", "Ends")
				for _, r := range rows {
					ends := "open"
					if r.EndDate != nil {
						ends = domain.FormatWithExpiration(*r.EndDate, now)
					}
					t.Row(strconv.Itoa(r.ID), strconv.Itoa(r.Switch), r.ManagementIP,
						strconv.Itoa(r.User), domain.FormatWithRelative(r.CreationDate, now), ends)
				}
				return t
			})
		},
	})
	return cmd
}

type datesDoc struct {
	Min     string `json:"min"     yaml:"min"`
	Max     string `json:"max"     yaml:"max"`
	Default string `json:"default" yaml:"default"`
}

func newDatesCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "Show the end dates a new reservation may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := rt.now()
			w := domain.ReservationWindowAt(now)
			doc := datesDoc{
				Min:     domain.FormatForInput(w.Min),
				Max:     domain.FormatForInput(w.Max),
				Default: domain.FormatForInput(w.Default),
			}
			return rt.out.render(doc, func() *table.Table {
				return newTable("Bound", "Date", "When").Rows(
					[]string{"Earliest", doc.Min, domain.FormatWithRelative(w.Min, now)},
					[]string{"Latest", doc.Max, domain.FormatWithRelative(w.Max, now)},
					[]string{"Default", doc.Default, domain.FormatWithRelative(w.Default, now)},
				)
			})
		},
	}
}
