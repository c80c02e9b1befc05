package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/advisor"
	"github.com/ledgerline-dev/ledgerline/internal/cashflow"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/recurrence"
)

func newAdviseCommand() *cobra.Command {
	var (
		dataDir     string
		granularity string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Print the cashflow context block for the chat advisor",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			t, err := granularityFor(granularity, cfg)
			if err != nil {
				return err
			}

			ref, err := parseDateFlag(date, "date")
			if err != nil {
				return err
			}
			if ref.IsZero() {
				ref = time.Now()
			}

			deals, err := svc.Deals()
			if err != nil {
				return err
			}
			costs, err := svc.FixedCosts()
			if err != nil {
				return err
			}

			p := period.Resolve(ref, t)
			opts := recurrence.Options{EnforceDealEndDates: cfg.Reporting.EnforceDealEndDates}
			point, err := cashflow.Aggregate(deals, costs, p, opts)
			if err != nil {
				return err
			}

			s := cashflow.Summarize([]model.CashflowPoint{point})
			fmt.Print(advisor.Context(point.Label, s, cfg.Business.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&granularity, "granularity", "", "day, week, month, quarter or year")
	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}
