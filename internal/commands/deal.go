package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func newAddDealCommand() *cobra.Command {
	var (
		dataDir     string
		client      string
		dealType    string
		status      string
		amount      string
		monthly     string
		start       string
		end         string
		expected    string
		probability string
		received    string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "add-deal",
		Short: "Record a new deal",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			d := model.Deal{
				Client: client,
				Type:   model.DealType(dealType),
				Status: model.DealStatus(status),
				Notes:  notes,
			}
			if d.Type != model.DealOneTime && d.Type != model.DealRecurring {
				return fmt.Errorf("invalid --type %q: expected one_time or recurring", dealType)
			}
			if !model.ValidStatus(d.Status) {
				return fmt.Errorf("invalid --status %q", status)
			}

			if amount != "" {
				if d.Amount, err = decimal.NewFromString(amount); err != nil {
					return fmt.Errorf("invalid --amount %q: %w", amount, err)
				}
			}
			if monthly != "" {
				if d.MonthlyAmount, err = decimal.NewFromString(monthly); err != nil {
					return fmt.Errorf("invalid --monthly-amount %q: %w", monthly, err)
				}
			}

			if d.StartDate, err = parseDateFlag(start, "start"); err != nil {
				return err
			}
			if d.EndDate, err = parseDateFlag(end, "end"); err != nil {
				return err
			}
			if d.ExpectedDate, err = parseDateFlag(expected, "expected"); err != nil {
				return err
			}
			if probability != "" {
				if d.Probability, err = decimal.NewFromString(probability); err != nil {
					return fmt.Errorf("invalid --probability %q: %w", probability, err)
				}
			}

			if d.PaymentReceivedDate, err = parseDateFlag(received, "received"); err != nil {
				return err
			}

			// Catch incomplete records at entry time instead of at the
			// first report.
			if d.Type == model.DealRecurring {
				if d.MonthlyAmount.IsZero() {
					return fmt.Errorf("recurring deal requires --monthly-amount")
				}
				if d.StartDate.IsZero() {
					return fmt.Errorf("recurring deal requires --start")
				}
			}
			if d.Type == model.DealOneTime && d.Status == model.StatusPaid && d.PaymentReceivedDate.IsZero() {
				return fmt.Errorf("paid one-time deal requires --received")
			}

			dealID, err := svc.AddDeal(d)
			if err != nil {
				return err
			}

			recordMutation(root, cfg, "add-deal", dealID, "client="+client)
			fmt.Printf("Added deal %s (%s)\n", dealID, client)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	_ = cmd.MarkFlagRequired("client")
	cmd.Flags().StringVar(&dealType, "type", "one_time", "deal type: one_time or recurring")
	cmd.Flags().StringVar(&status, "status", "potential", "deal status")
	cmd.Flags().StringVar(&amount, "amount", "", "one-time deal amount")
	cmd.Flags().StringVar(&monthly, "monthly-amount", "", "recurring monthly amount")
	cmd.Flags().StringVar(&start, "start", "", "recurring start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "recurring end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&expected, "expected", "", "expected close date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&probability, "probability", "", "close probability 0..1")
	cmd.Flags().StringVar(&received, "received", "", "payment received date (YYYY-MM-DD, required when paid)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func newSetStatusCommand() *cobra.Command {
	var dataDir string
	var received string

	cmd := &cobra.Command{
		Use:   "set-status <deal-id> <status>",
		Short: "Update a deal's lifecycle status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			dealID := args[0]
			status := model.DealStatus(args[1])

			receivedDate, err := parseDateFlag(received, "received")
			if err != nil {
				return err
			}
			if status == model.StatusPaid && receivedDate.IsZero() {
				now := time.Now()
				receivedDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			}

			if err := svc.SetDealStatus(dealID, status, receivedDate); err != nil {
				return err
			}

			recordMutation(root, cfg, "set-status", dealID, "status="+string(status))
			fmt.Printf("Deal %s is now %s\n", dealID, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&received, "received", "", "payment received date (YYYY-MM-DD, defaults to today when paid)")

	return cmd
}
