package cashflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/recurrence"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func paidDeal(id, amount string, received time.Time) model.Deal {
	return model.Deal{
		ID:                  id,
		Type:                model.DealOneTime,
		Status:              model.StatusPaid,
		Amount:              dec(amount),
		PaymentReceivedDate: received,
	}
}

func rent(amount string, start time.Time) model.FixedCost {
	return model.FixedCost{
		ID:        "FC-2024-001",
		Name:      "Rent",
		Category:  "facilities",
		Amount:    dec(amount),
		Frequency: model.FrequencyMonthly,
		StartDate: start,
		IsActive:  true,
	}
}

func TestAggregate_JuneScenario(t *testing.T) {
	// One paid deal in June plus an ongoing monthly cost.
	deals := []model.Deal{paidDeal("D-2024-001", "5000", date(2024, time.June, 10))}
	costs := []model.FixedCost{rent("1200", date(2024, time.January, 1))}

	june := period.Resolve(date(2024, time.June, 1), period.Month)
	got, err := Aggregate(deals, costs, june, recurrence.Options{})
	require.NoError(t, err)

	assert.Equal(t, "Jun", got.Label)
	assert.True(t, got.Income.Equal(dec("5000")), "income %s", got.Income)
	assert.True(t, got.Expenses.Equal(dec("1200")), "expenses %s", got.Expenses)
	assert.True(t, got.Net.Equal(dec("3800")), "net %s", got.Net)
}

func TestAggregate_Empty(t *testing.T) {
	june := period.Resolve(date(2024, time.June, 1), period.Month)

	got, err := Aggregate(nil, nil, june, recurrence.Options{})
	require.NoError(t, err)
	assert.True(t, got.Income.IsZero())
	assert.True(t, got.Expenses.IsZero())
	assert.True(t, got.Net.IsZero())
}

func TestAggregate_Idempotent(t *testing.T) {
	deals := []model.Deal{paidDeal("D-2024-001", "5000", date(2024, time.June, 10))}
	costs := []model.FixedCost{rent("1200", date(2024, time.January, 1))}
	june := period.Resolve(date(2024, time.June, 1), period.Month)

	first, err := Aggregate(deals, costs, june, recurrence.Options{})
	require.NoError(t, err)
	second, err := Aggregate(deals, costs, june, recurrence.Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_ValidationErrorAborts(t *testing.T) {
	deals := []model.Deal{
		paidDeal("D-2024-001", "5000", date(2024, time.June, 10)),
		{ID: "D-2024-002", Type: model.DealRecurring, StartDate: date(2024, time.January, 1)}, // missing monthly amount
	}

	june := period.Resolve(date(2024, time.June, 1), period.Month)
	_, err := Aggregate(deals, nil, june, recurrence.Options{})

	var verr recurrence.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "D-2024-002", verr.ID)
}

func TestAggregate_InactiveCostExcluded(t *testing.T) {
	inactive := rent("1200", date(2024, time.January, 1))
	inactive.IsActive = false

	june := period.Resolve(date(2024, time.June, 1), period.Month)
	got, err := Aggregate(nil, []model.FixedCost{inactive}, june, recurrence.Options{})
	require.NoError(t, err)
	assert.True(t, got.Expenses.IsZero())
}

func TestAggregate_MixedRecurringAndOneTime(t *testing.T) {
	deals := []model.Deal{
		paidDeal("D-2024-001", "5000", date(2024, time.June, 10)),
		{
			ID:            "D-2024-002",
			Type:          model.DealRecurring,
			Status:        model.StatusConfirmed,
			MonthlyAmount: dec("500"),
			StartDate:     date(2024, time.January, 1),
		},
	}
	costs := []model.FixedCost{
		rent("1200", date(2024, time.January, 1)),
		{
			ID:        "FC-2024-002",
			Name:      "Insurance",
			Amount:    dec("1200"),
			Frequency: model.FrequencyYearly,
			StartDate: date(2024, time.January, 1),
			IsActive:  true,
		},
	}

	june := period.Resolve(date(2024, time.June, 1), period.Month)
	got, err := Aggregate(deals, costs, june, recurrence.Options{})
	require.NoError(t, err)

	assert.True(t, got.Income.Equal(dec("5500")), "5000 one-time + 500 MRR, got %s", got.Income)
	assert.True(t, got.Expenses.Equal(dec("1300")), "1200 rent + 100 prorated insurance, got %s", got.Expenses)
	assert.True(t, got.Net.Equal(dec("4200")))
}
