// Package cashflow aggregates deal and fixed-cost records into per-period
// income, expense and net totals for the dashboard.
package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/recurrence"
)

// Aggregate computes the cashflow point for a single period. Income sums
// deal contributions, expenses sum fixed-cost contributions, net is the
// difference. Inputs are never mutated; empty collections yield zeros.
//
// The first validation error aborts the whole aggregation: a partial
// total would be indistinguishable from a correct one.
func Aggregate(deals []model.Deal, costs []model.FixedCost, p period.Period, opts recurrence.Options) (model.CashflowPoint, error) {
	income := decimal.Zero
	for _, d := range deals {
		c, err := recurrence.DealContribution(d, p, opts)
		if err != nil {
			return model.CashflowPoint{}, err
		}
		income = income.Add(c)
	}

	expenses := decimal.Zero
	for _, fc := range costs {
		c, err := recurrence.CostContribution(fc, p)
		if err != nil {
			return model.CashflowPoint{}, err
		}
		expenses = expenses.Add(c)
	}

	return model.CashflowPoint{
		Label:    p.Label(),
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}, nil
}
