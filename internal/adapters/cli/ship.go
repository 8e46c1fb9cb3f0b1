package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
)

// NewShipCommand creates the ship command
func NewShipCommand() *cobra.Command {
	var choices bool

	cmd := &cobra.Command{
		Use:   "ship <symbol>",
		Short: "Show a ship with its current waypoint",
		Long: `Show a ship's navigation, fuel and cargo, the waypoint it is at and what
that waypoint offers (marketplace, shipyard, fuel).

With --choices, also list every waypoint of the system ranked by distance.

Examples:
  spacetraders-dashboard ship ENDURANCE-1
  spacetraders-dashboard ship ENDURANCE-1 --choices`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := newApp(cfg.Cache, newClient(cfg), nil)
			if err != nil {
				return err
			}

			return runShip(cmd.Context(), cmd.OutOrStdout(), a, args[0], choices)
		},
	}

	cmd.Flags().BoolVar(&choices, "choices", false, "List navigation choices ranked by distance")

	return cmd
}

func runShip(ctx context.Context, out io.Writer, a *app, shipSymbol string, withChoices bool) error {
	sc, err := mediator.Send[*dashboard.ShipContext](ctx, a.mediator, &dashboard.GetShipContextQuery{ShipSymbol: shipSymbol})
	if err != nil {
		return fmt.Errorf("failed to resolve ship: %w", err)
	}

	features := make([]string, 0, len(sc.Features))
	for _, f := range sc.Features {
		features = append(features, f.String())
	}

	s := sc.Ship
	fmt.Fprintf(out, "Ship:     %s (%s)\n", s.Symbol, s.Role)
	fmt.Fprintf(out, "Status:   %s at %s (%s)\n", s.Nav.Status, s.Nav.WaypointSymbol, sc.Waypoint.Type)
	fmt.Fprintf(out, "Features: %s\n", strings.Join(features, ", "))
	fmt.Fprintf(out, "Fuel:     %d/%d\n", s.Fuel.Current, s.Fuel.Capacity)
	fmt.Fprintf(out, "Cargo:    %d/%d\n", s.Cargo.Units, s.Cargo.Capacity)
	for _, item := range s.Cargo.Inventory {
		fmt.Fprintf(out, "  %-24s %d\n", item.Symbol, item.Units)
	}

	if !withChoices {
		return nil
	}

	nav, err := mediator.Send[*dashboard.NavChoices](ctx, a.mediator, &dashboard.GetNavChoicesQuery{ShipSymbol: shipSymbol})
	if err != nil {
		return fmt.Errorf("failed to rank destinations: %w", err)
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DESTINATION\tTYPE\tDISTANCE")
	fmt.Fprintln(w, "-----------\t----\t--------")
	for _, c := range nav.Choices {
		fmt.Fprintf(w, "%s\t%s\t%.1f\n", c.Waypoint.Symbol, c.Waypoint.Type, c.Distance)
	}
	return w.Flush()
}
