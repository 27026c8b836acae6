package commands

import (
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(offersCmd)
}

var offersCmd = &cobra.Command{
	Use:   "offers <product-url>",
	Short: "List merchant offers for a known product page URL.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()

		offers, err := client.Offers(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch offers", err)
		}
		printOffers(offers)
	},
}
