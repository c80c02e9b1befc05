package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/recurrence"
)

// Forecast is the weighted pipeline outlook for one period. It is kept
// strictly separate from historical aggregation: expected dates and
// probabilities never influence Aggregate or Series.
type Forecast struct {
	// Weighted is sum(value x probability) over open deals expected to
	// close in the period.
	Weighted decimal.Decimal
	// Pipeline is the unweighted total of the same deals.
	Pipeline decimal.Decimal
	// Deals counts the open deals considered.
	Deals int
}

var one = decimal.NewFromInt(1)

// PipelineForecast computes the pipeline outlook for deals whose expected
// close date falls in the period. Paid deals and deals without an
// expected date are skipped. A probability outside [0, 1] is a
// validation error.
func PipelineForecast(deals []model.Deal, p period.Period) (Forecast, error) {
	f := Forecast{Weighted: decimal.Zero, Pipeline: decimal.Zero}
	for _, d := range deals {
		if d.Status == model.StatusPaid || d.ExpectedDate.IsZero() {
			continue
		}
		if !p.Contains(d.ExpectedDate) {
			continue
		}
		if d.Probability.IsNegative() || d.Probability.GreaterThan(one) {
			return Forecast{}, recurrence.ValidationError{
				Kind:        recurrence.KindDeal,
				ID:          d.ID,
				Field:       "probability",
				Description: "probability must be between 0 and 1",
			}
		}

		value := d.Amount
		if d.IsRecurring() {
			value = d.MonthlyAmount
		}
		f.Pipeline = f.Pipeline.Add(value)
		f.Weighted = f.Weighted.Add(value.Mul(d.Probability))
		f.Deals++
	}
	return f, nil
}
