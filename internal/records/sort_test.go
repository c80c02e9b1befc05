package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func TestSortDeals_ByAmount(t *testing.T) {
	deals := []model.Deal{
		{ID: "D-2024-001", Amount: dec("900")},
		{ID: "D-2024-002", Amount: dec("100")},
		{ID: "D-2024-003", Amount: dec("500")},
	}

	SortDeals(deals, DealByAmount)

	assert.Equal(t, "D-2024-002", deals[0].ID)
	assert.Equal(t, "D-2024-003", deals[1].ID)
	assert.Equal(t, "D-2024-001", deals[2].ID)
}

func TestSortDeals_ByClientCaseInsensitive(t *testing.T) {
	deals := []model.Deal{
		{ID: "D-2024-001", Client: "zeta"},
		{ID: "D-2024-002", Client: "Acme"},
	}

	SortDeals(deals, DealByClient)
	assert.Equal(t, "Acme", deals[0].Client)
}

func TestSortDeals_UnknownFieldKeepsOrder(t *testing.T) {
	deals := []model.Deal{
		{ID: "D-2024-002"},
		{ID: "D-2024-001"},
	}

	SortDeals(deals, DealField("probability"))
	assert.Equal(t, "D-2024-002", deals[0].ID)
}

func TestSortCosts_ByStart(t *testing.T) {
	costs := []model.FixedCost{
		{ID: "FC-2024-002", StartDate: date(2024, time.June, 1)},
		{ID: "FC-2024-001", StartDate: date(2024, time.January, 1)},
	}

	SortCosts(costs, CostByStart)
	assert.Equal(t, "FC-2024-001", costs[0].ID)
}
