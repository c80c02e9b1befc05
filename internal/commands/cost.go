package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func newAddCostCommand() *cobra.Command {
	var (
		dataDir   string
		name      string
		category  string
		amount    string
		frequency string
		start     string
		end       string
	)

	cmd := &cobra.Command{
		Use:   "add-cost",
		Short: "Record a new fixed cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			c := model.FixedCost{
				Name:      name,
				Category:  category,
				Frequency: model.CostFrequency(frequency),
				IsActive:  true,
			}
			if !model.ValidFrequency(c.Frequency) {
				return fmt.Errorf("invalid --frequency %q: expected monthly, quarterly, yearly or one_time", frequency)
			}

			if c.Amount, err = decimal.NewFromString(amount); err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}

			if c.StartDate, err = parseDateFlag(start, "start"); err != nil {
				return err
			}
			if c.StartDate.IsZero() {
				return fmt.Errorf("--start is required")
			}
			if c.EndDate, err = parseDateFlag(end, "end"); err != nil {
				return err
			}

			costID, err := svc.AddFixedCost(c)
			if err != nil {
				return err
			}

			recordMutation(root, cfg, "add-cost", costID, "name="+name)
			fmt.Printf("Added fixed cost %s (%s)\n", costID, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&name, "name", "", "cost name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&category, "category", "", "cost category")
	cmd.Flags().StringVar(&amount, "amount", "", "amount per occurrence (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "monthly, quarterly, yearly or one_time")
	cmd.Flags().StringVar(&start, "start", "", "first active date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&end, "end", "", "last active date (YYYY-MM-DD)")

	return cmd
}

func newDeactivateCostCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "deactivate-cost <cost-id>",
		Short: "Deactivate a fixed cost (soft delete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, svc, err := openProject(dataDir)
			if err != nil {
				return err
			}

			costID := args[0]
			if err := svc.DeactivateCost(costID); err != nil {
				return err
			}

			recordMutation(root, cfg, "deactivate-cost", costID, "")
			fmt.Printf("Deactivated fixed cost %s\n", costID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}
