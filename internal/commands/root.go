package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerline",
		Short:   "Small-business cashflow dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newAddDealCommand(),
		newSetStatusCommand(),
		newAddCostCommand(),
		newDeactivateCostCommand(),
		newListDealsCommand(),
		newListCostsCommand(),
		newReportCommand(),
		newSummaryCommand(),
		newForecastCommand(),
		newAdviseCommand(),
	)

	return rootCmd
}
