package cashflow

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/recurrence"
)

// RangeError reports a reporting range whose end precedes its start.
type RangeError struct {
	Start time.Time
	End   time.Time
}

func (e RangeError) Error() string {
	return fmt.Sprintf("range end %s before start %s", e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}

// Series partitions [rangeStart, rangeEnd] into consecutive periods of
// the given granularity and aggregates each one, producing the ordered
// sequence of points the chart consumes. The first and last periods are
// the calendar periods containing the range bounds.
func Series(deals []model.Deal, costs []model.FixedCost, t period.Type, rangeStart, rangeEnd time.Time, opts recurrence.Options) ([]model.CashflowPoint, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, RangeError{Start: rangeStart, End: rangeEnd}
	}

	var points []model.CashflowPoint
	for p := period.Resolve(rangeStart, t); !p.Start.After(rangeEnd); p = p.Next() {
		pt, err := Aggregate(deals, costs, p, opts)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

// Summary holds whole-range totals for the header cards.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Summarize sums a series into range totals.
func Summarize(points []model.CashflowPoint) Summary {
	s := Summary{Income: decimal.Zero, Expenses: decimal.Zero, Net: decimal.Zero}
	for _, p := range points {
		s.Income = s.Income.Add(p.Income)
		s.Expenses = s.Expenses.Add(p.Expenses)
		s.Net = s.Net.Add(p.Net)
	}
	return s
}
