package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/sellermate/negotiator/internal/api/client"
)

func offersCmd() *cobra.Command {
	offersRoot := &cobra.Command{
		Use:   "offers",
		Short: "Analyze and execute offers",
		Long: "Analyze incoming offers against your negotiation rules and execute\n" +
			"the resulting decisions on the marketplace.",
	}

	offersRoot.AddCommand(
		offersAnalyzeCmd(),
	)

	return offersRoot
}

func offersAnalyzeCmd() *cobra.Command {
	var (
		offerID   string
		listingID string
		amount    float64
		buyerID   string
		execute   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an offer against your rules",
		Long: "Score an offer against your enabled rules and print the verdict.\n" +
			"With --execute, the verdict is also recorded and pushed to the\n" +
			"marketplace.",
		Example: `  # Dry-run: see what the engine would do
  nego offers analyze --user seller-1 --offer offer-1 \
    --listing listing-1 --amount 75 --buyer buyer-9

  # Analyze and act on the verdict
  nego offers analyze --user seller-1 --offer offer-1 \
    --listing listing-1 --amount 75 --buyer buyer-9 --execute`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if offerID == "" || listingID == "" || amount <= 0 {
				return fmt.Errorf("--offer, --listing, and a positive --amount are required")
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			analysis, err := c.AnalyzeOffer(ctx, apiclient.AnalyzeOfferRequest{
				OfferID:     offerID,
				ListingID:   listingID,
				OfferAmount: amount,
				BuyerID:     buyerID,
			})
			if err != nil {
				return err
			}

			if !execute {
				if jsonOutput() {
					return outputJSON(analysis)
				}
				return printAnalysisDetail(analysis)
			}

			result, err := c.ExecuteOffer(ctx, offerID, analysis)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			return printExecutionDetail(result)
		},
	}
	cmd.Flags().StringVar(&offerID, "offer", "", "offer ID")
	cmd.Flags().StringVar(&listingID, "listing", "", "listing ID")
	cmd.Flags().Float64Var(&amount, "amount", 0, "offer amount")
	cmd.Flags().StringVar(&buyerID, "buyer", "", "buyer ID")
	cmd.Flags().BoolVar(&execute, "execute", false, "record the verdict and push it to the marketplace")

	return cmd
}
