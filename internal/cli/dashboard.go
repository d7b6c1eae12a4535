package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show occupancy and revenue overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
}

func runDashboard() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	stats, err := newAPIClient().Dashboard()
	if err != nil {
		return fmt.Errorf("loading dashboard: %w", err)
	}

	if isJSON() {
		return printJSON(stats)
	}

	printDashboard(stats)
	return nil
}
