package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/cashflow"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/recurrence"
)

func newReportCommand() *cobra.Command {
	var (
		dataDir     string
		granularity string
		from        string
		to          string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Cashflow series over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			t, err := granularityFor(granularity, cfg)
			if err != nil {
				return err
			}

			rangeStart, err := parseDateFlag(from, "from")
			if err != nil {
				return err
			}
			rangeEnd, err := parseDateFlag(to, "to")
			if err != nil {
				return err
			}
			if rangeEnd.IsZero() {
				rangeEnd = time.Now()
			}
			if rangeStart.IsZero() {
				rangeStart = rangeEnd.AddDate(0, -5, 0)
			}

			deals, err := svc.Deals()
			if err != nil {
				return err
			}
			costs, err := svc.FixedCosts()
			if err != nil {
				return err
			}

			opts := recurrence.Options{EnforceDealEndDates: cfg.Reporting.EnforceDealEndDates}
			points, err := cashflow.Series(deals, costs, t, rangeStart, rangeEnd, opts)
			if err != nil {
				return err
			}

			currency := cfg.Business.Currency
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "PERIOD\tINCOME\tEXPENSES\tNET\n")
			for _, p := range points {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Label, p.Income.StringFixed(2), p.Expenses.StringFixed(2), p.Net.StringFixed(2))
			}
			s := cashflow.Summarize(points)
			fmt.Fprintf(tw, "TOTAL (%s)\t%s\t%s\t%s\n", currency, s.Income.StringFixed(2), s.Expenses.StringFixed(2), s.Net.StringFixed(2))
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&granularity, "granularity", "", "day, week, month, quarter or year")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD, default 6 periods back)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD, default today)")

	return cmd
}

func newSummaryCommand() *cobra.Command {
	var (
		dataDir     string
		granularity string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Cashflow totals for a single period",
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

			currency := cfg.Business.Currency
			fmt.Printf("%s\n", point.Label)
			fmt.Printf("Income:   %s %s\n", point.Income.StringFixed(2), currency)
			fmt.Printf("Expenses: %s %s\n", point.Expenses.StringFixed(2), currency)
			fmt.Printf("Net:      %s %s\n", point.Net.StringFixed(2), currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&granularity, "granularity", "", "day, week, month, quarter or year")
	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func newForecastCommand() *cobra.Command {
	var dataDir string
	var months int

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Weighted pipeline forecast by month",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			horizon := months
			if horizon <= 0 {
				horizon = cfg.Reporting.ForecastMonths
			}

			deals, err := svc.Deals()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "MONTH\tWEIGHTED\tPIPELINE\tDEALS\n")
			p := period.Resolve(time.Now(), period.Month)
			for i := 0; i < horizon; i++ {
				f, err := cashflow.PipelineForecast(deals, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Label(), f.Weighted.StringFixed(2), f.Pipeline.StringFixed(2), f.Deals)
				p = p.Next()
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().IntVar(&months, "months", 0, "forecast horizon in months (default from config)")

	return cmd
}
