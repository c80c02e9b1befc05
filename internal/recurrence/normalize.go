// Package recurrence converts deal and fixed-cost amounts, defined at
// heterogeneous recurrence cadences, into contributions for a single
// reporting period. All conversion constants live here so every call
// site prorates identically.
package recurrence

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
)

// Options controls how recurrence windows are interpreted.
type Options struct {
	// EnforceDealEndDates stops a recurring deal's contribution after its
	// EndDate. Off by default: recurring deals are open-ended.
	EnforceDealEndDates bool
}

// farFuture caps the validity window of costs with no end date.
var farFuture = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)

// Proration constants. The week ratios are the fixed averages the
// dashboard has always used; they are deliberately not derived from the
// calendar so that week totals are stable across months.
var (
	weeksPerMonth    = decimal.NewFromFloat(4.33)
	weeksPerQuarter  = decimal.NewFromInt(13)
	weeksPerYear     = decimal.NewFromInt(52)
	daysPerQuarter   = decimal.NewFromInt(90)
	daysPerYear      = decimal.NewFromInt(365)
	monthsPerQuarter = decimal.NewFromInt(3)
	monthsPerYear    = decimal.NewFromInt(12)
	quartersPerYear  = decimal.NewFromInt(4)
)

// Convert scales an amount defined at the given native frequency into one
// unit of the target granularity. periodStart anchors the days-in-month
// divisor for monthly amounts prorated to a day.
func Convert(amount decimal.Decimal, freq model.CostFrequency, target period.Type, periodStart time.Time) decimal.Decimal {
	switch freq {
	case model.FrequencyMonthly:
		switch target {
		case period.Day:
			return amount.Div(decimal.NewFromInt(int64(period.DaysInMonth(periodStart))))
		case period.Week:
			return amount.Div(weeksPerMonth)
		case period.Month:
			return amount
		case period.Quarter:
			return amount.Mul(monthsPerQuarter)
		case period.Year:
			return amount.Mul(monthsPerYear)
		}
	case model.FrequencyQuarterly:
		switch target {
		case period.Day:
			return amount.Div(daysPerQuarter)
		case period.Week:
			return amount.Div(weeksPerQuarter)
		case period.Month:
			return amount.Div(monthsPerQuarter)
		case period.Quarter:
			return amount
		case period.Year:
			return amount.Mul(quartersPerYear)
		}
	case model.FrequencyYearly:
		switch target {
		case period.Day:
			return amount.Div(daysPerYear)
		case period.Week:
			return amount.Div(weeksPerYear)
		case period.Month:
			return amount.Div(monthsPerYear)
		case period.Quarter:
			return amount.Div(quartersPerYear)
		case period.Year:
			return amount
		}
	}
	return decimal.Zero
}

// CostContribution returns the fixed cost's contribution to the period.
// Inactive costs contribute zero. Costs whose validity window does not
// overlap the period contribute zero. A zero StartDate is a validation
// error rather than a silent zero.
func CostContribution(c model.FixedCost, p period.Period) (decimal.Decimal, error) {
	if !c.IsActive {
		return decimal.Zero, nil
	}
	if !model.ValidFrequency(c.Frequency) {
		return decimal.Zero, ValidationError{Kind: KindFixedCost, ID: c.ID, Field: "frequency", Description: "unknown frequency " + string(c.Frequency)}
	}
	if c.StartDate.IsZero() {
		return decimal.Zero, ValidationError{Kind: KindFixedCost, ID: c.ID, Field: "start_date", Description: "missing start date"}
	}

	end := c.EndDate
	if end.IsZero() {
		end = farFuture
	}
	if c.StartDate.After(p.End) || end.Before(p.Start) {
		return decimal.Zero, nil
	}

	if c.Frequency == model.FrequencyOneTime {
		// A one-off expense lands once, in the period containing its date.
		if p.Contains(c.StartDate) {
			return c.Amount, nil
		}
		return decimal.Zero, nil
	}

	return Convert(c.Amount, c.Frequency, p.Type, p.Start), nil
}

// DealContribution returns the deal's contribution to the period.
//
// One-time deals contribute their full amount in the exact period that
// contains the payment-received date, and only once paid. Recurring deals
// contribute their monthly amount prorated to the period's granularity,
// from StartDate onward.
func DealContribution(d model.Deal, p period.Period, opts Options) (decimal.Decimal, error) {
	switch d.Type {
	case model.DealOneTime:
		if d.Status != model.StatusPaid {
			return decimal.Zero, nil
		}
		if d.PaymentReceivedDate.IsZero() {
			return decimal.Zero, ValidationError{Kind: KindDeal, ID: d.ID, Field: "payment_received_date", Description: "paid one-time deal missing payment received date"}
		}
		if p.Contains(d.PaymentReceivedDate) {
			return d.Amount, nil
		}
		return decimal.Zero, nil

	case model.DealRecurring:
		if d.MonthlyAmount.IsZero() {
			return decimal.Zero, ValidationError{Kind: KindDeal, ID: d.ID, Field: "monthly_amount", Description: "recurring deal missing monthly amount"}
		}
		if d.StartDate.IsZero() {
			return decimal.Zero, ValidationError{Kind: KindDeal, ID: d.ID, Field: "start_date", Description: "recurring deal missing start date"}
		}
		if d.StartDate.After(p.End) {
			return decimal.Zero, nil
		}
		if opts.EnforceDealEndDates && !d.EndDate.IsZero() && d.EndDate.Before(p.Start) {
			return decimal.Zero, nil
		}
		return Convert(d.MonthlyAmount, model.FrequencyMonthly, p.Type, p.Start), nil
	}

	return decimal.Zero, ValidationError{Kind: KindDeal, ID: d.ID, Field: "type", Description: "unknown deal type " + string(d.Type)}
}
