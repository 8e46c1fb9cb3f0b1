package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewWaypointsCommand creates the waypoints command
func NewWaypointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "waypoints <system>",
		Short: "List a system's waypoints",
		Long: `List every waypoint of a system in the order the dashboard shows them:
grouped by type, then in the order the API returned them.

Examples:
  spacetraders-dashboard waypoints X1-GZ7`,
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

			return runWaypoints(cmd.Context(), cmd.OutOrStdout(), a, args[0])
		},
	}
}

func runWaypoints(ctx context.Context, out io.Writer, a *app, systemSymbol string) error {
	waypoints, err := a.waypoints.GetSystemWaypoints(ctx, systemSymbol)
	if err != nil {
		return fmt.Errorf("failed to list waypoints: %w", err)
	}

	if len(waypoints) == 0 {
		fmt.Fprintln(out, "No waypoints found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tTYPE\tX\tY\tTRAITS")
	fmt.Fprintln(w, "------\t----\t-\t-\t------")

	for _, wp := range waypoints {
		traits := make([]string, 0, len(wp.Traits))
		for _, t := range wp.Traits {
			traits = append(traits, t.Symbol)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", wp.Symbol, wp.Type, wp.X, wp.Y, strings.Join(traits, ","))
	}

	return w.Flush()
}
