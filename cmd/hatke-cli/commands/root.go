package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "hatke-cli",
	Short: "hatke-cli searches BuyHatke and compares merchant offers for a product.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
		if *verbose {
			telemetry.InstrumentPerfStats(cmd.Context())
		}
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP(
		"verbose", "v", false,
		"Enable debug logging and raw HTTP exchange dumps.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
