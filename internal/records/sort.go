package records

import (
	"sort"
	"strings"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// DealField enumerates the fields deals can be sorted by. The set is
// closed on purpose: arbitrary string-keyed field access invites runtime
// type confusion.
type DealField string

const (
	DealByStart  DealField = "start_date"
	DealByAmount DealField = "amount"
	DealByClient DealField = "client"
	DealByStatus DealField = "status"
)

// CostField enumerates the fields fixed costs can be sorted by.
type CostField string

const (
	CostByStart    CostField = "start_date"
	CostByAmount   CostField = "amount"
	CostByName     CostField = "name"
	CostByCategory CostField = "category"
)

// SortDeals stably sorts deals by the given field, ascending. Unknown
// fields leave the order untouched.
func SortDeals(deals []model.Deal, field DealField) {
	var less func(a, b model.Deal) bool
	switch field {
	case DealByStart:
		less = func(a, b model.Deal) bool { return a.StartDate.Before(b.StartDate) }
	case DealByAmount:
		less = func(a, b model.Deal) bool { return a.Amount.LessThan(b.Amount) }
	case DealByClient:
		less = func(a, b model.Deal) bool { return strings.ToLower(a.Client) < strings.ToLower(b.Client) }
	case DealByStatus:
		less = func(a, b model.Deal) bool { return a.Status < b.Status }
	default:
		return
	}
	sort.SliceStable(deals, func(i, j int) bool { return less(deals[i], deals[j]) })
}

// SortCosts stably sorts fixed costs by the given field, ascending.
func SortCosts(costs []model.FixedCost, field CostField) {
	var less func(a, b model.FixedCost) bool
	switch field {
	case CostByStart:
		less = func(a, b model.FixedCost) bool { return a.StartDate.Before(b.StartDate) }
	case CostByAmount:
		less = func(a, b model.FixedCost) bool { return a.Amount.LessThan(b.Amount) }
	case CostByName:
		less = func(a, b model.FixedCost) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case CostByCategory:
		less = func(a, b model.FixedCost) bool { return strings.ToLower(a.Category) < strings.ToLower(b.Category) }
	default:
		return
	}
	sort.SliceStable(costs, func(i, j int) bool { return less(costs[i], costs[j]) })
}
