package model

import "github.com/shopspring/decimal"

// CashflowPoint is the aggregation result for one reporting period.
// Income derives from deals, expenses from fixed costs.
type CashflowPoint struct {
	Label    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}
