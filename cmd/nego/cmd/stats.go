package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show negotiation statistics",
		Example: `  nego stats --user seller-1
  nego stats --user seller-1 --days 7 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			stats, err := c.GetStats(context.Background(), days)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			return printStatsDetail(stats)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "trailing window in days (default 30)")

	return cmd
}
