package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/records"
)

func newListDealsCommand() *cobra.Command {
	var dataDir string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list-deals",
		Short: "List all deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			deals, err := svc.Deals()
			if err != nil {
				return err
			}
			records.SortDeals(deals, records.DealField(sortBy))

			currency := cfg.Business.Currency
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tCLIENT\tTYPE\tSTATUS\tAMOUNT (%s)\tMONTHLY (%s)\n", currency, currency)
			for _, d := range deals {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Client, d.Type, d.Status, d.Amount.StringFixed(2), d.MonthlyAmount.StringFixed(2))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&sortBy, "sort", string(records.DealByStart), "sort field: start_date, amount, client or status")

	return cmd
}

func newListCostsCommand() *cobra.Command {
	var dataDir string
	var sortBy string
	var all bool

	cmd := &cobra.Command{
		Use:   "list-costs",
		Short: "List fixed costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			costs, err := svc.FixedCosts()
			if err != nil {
				return err
			}
			records.SortCosts(costs, records.CostField(sortBy))

			currency := cfg.Business.Currency
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tNAME\tCATEGORY\tAMOUNT (%s)\tFREQUENCY\tACTIVE\n", currency)
			for _, c := range costs {
				if !all && !c.IsActive {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
					c.ID, c.Name, c.Category, c.Amount.StringFixed(2), c.Frequency, c.IsActive)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&sortBy, "sort", string(records.CostByStart), "sort field: start_date, amount, name or category")
	cmd.Flags().BoolVar(&all, "all", false, "include deactivated costs")

	return cmd
}
