package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var (
		days  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show decision history, newest first",
		Example: `  nego history --user seller-1
  nego history --user seller-1 --days 7 --limit 25`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			records, err := c.ListHistory(context.Background(), days, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(records)
			}
			if len(records) == 0 {
				fmt.Println("No history found.")
				return nil
			}
			return printHistoryTable(records)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "trailing window in days (default 30)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum records to return (default 100)")

	return cmd
}
