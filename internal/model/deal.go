package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealStatus represents the lifecycle state of a deal.
type DealStatus string

const (
	StatusPotential DealStatus = "potential"
	StatusConfirmed DealStatus = "confirmed"
	StatusInvoiced  DealStatus = "invoiced"
	StatusPaid      DealStatus = "paid"
)

// DealType distinguishes one-off sales from recurring contracts.
type DealType string

const (
	DealOneTime   DealType = "one_time"
	DealRecurring DealType = "recurring"
)

// Deal is a sales pipeline record. Amounts are in the base currency,
// VAT-exclusive.
type Deal struct {
	ID     string
	Client string
	Type   DealType
	Status DealStatus

	// Amount is the full value of a one-time deal.
	Amount decimal.Decimal

	// MonthlyAmount, StartDate and optional EndDate describe a recurring
	// contract. A zero EndDate means open-ended.
	MonthlyAmount decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time

	// PaymentReceivedDate is set when Status moves to paid. A one-time
	// deal only contributes to cashflow once this is set.
	PaymentReceivedDate time.Time

	// ExpectedDate and Probability (0..1) feed the pipeline forecast,
	// never historical aggregation.
	ExpectedDate time.Time
	Probability  decimal.Decimal

	Notes string
}

// IsRecurring reports whether the deal is a recurring contract.
func (d Deal) IsRecurring() bool {
	return d.Type == DealRecurring
}

// ValidStatus reports whether s is a known deal status.
func ValidStatus(s DealStatus) bool {
	switch s {
	case StatusPotential, StatusConfirmed, StatusInvoiced, StatusPaid:
		return true
	}
	return false
}
