package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostFrequency is the native recurrence cadence of a fixed cost.
type CostFrequency string

const (
	FrequencyMonthly   CostFrequency = "monthly"
	FrequencyQuarterly CostFrequency = "quarterly"
	FrequencyYearly    CostFrequency = "yearly"
	FrequencyOneTime   CostFrequency = "one_time"
)

// FixedCost is a recurring or one-time expense. Amount is per occurrence,
// base currency, VAT-exclusive.
type FixedCost struct {
	ID        string
	Name      string
	Category  string
	Amount    decimal.Decimal
	Frequency CostFrequency

	// StartDate is the first day the cost applies; a zero EndDate means
	// the cost runs indefinitely.
	StartDate time.Time
	EndDate   time.Time

	// IsActive is a soft-delete flag. Inactive costs are excluded from
	// all aggregation but kept on disk.
	IsActive bool
}

// ValidFrequency reports whether f is a known cost frequency.
func ValidFrequency(f CostFrequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOneTime:
		return true
	}
	return false
}
