package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spacetraders-dashboard",
		Short: "SpaceTraders dashboard - Browse your fleet from a web page",
		Long: `SpaceTraders dashboard serves an HTML view of your agent, contracts and
ships, and lets you fly, dock, refuel, mine and sell from the browser.

The agent token is read from ST_API_TOKEN (or api.token in config.yaml).

Examples:
  spacetraders-dashboard serve
  spacetraders-dashboard waypoints X1-GZ7
  spacetraders-dashboard ship ENDURANCE-1 --choices`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config.yaml (defaults to ./config.yaml and ./configs/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewWaypointsCommand())
	rootCmd.AddCommand(NewShipCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
