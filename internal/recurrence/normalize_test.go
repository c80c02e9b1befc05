package recurrence

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func monthlyCost(amount string, start time.Time) model.FixedCost {
	return model.FixedCost{
		ID:        "FC-2024-001",
		Name:      "Office rent",
		Category:  "facilities",
		Amount:    dec(amount),
		Frequency: model.FrequencyMonthly,
		StartDate: start,
		IsActive:  true,
	}
}

func TestConvert_MonthlyTable(t *testing.T) {
	march := date(2024, time.March, 1)
	amount := dec("433")

	assert.True(t, Convert(amount, model.FrequencyMonthly, period.Month, march).Equal(dec("433")))
	assert.True(t, Convert(amount, model.FrequencyMonthly, period.Quarter, march).Equal(dec("1299")))
	assert.True(t, Convert(amount, model.FrequencyMonthly, period.Year, march).Equal(dec("5196")))
	assert.True(t, Convert(amount, model.FrequencyMonthly, period.Week, march).Equal(dec("100")), "433 / 4.33 weeks")
	// March has 31 days.
	assert.True(t, Convert(dec("310"), model.FrequencyMonthly, period.Day, march).Equal(dec("10")))
}

func TestConvert_MonthlyToDay_UsesPeriodMonth(t *testing.T) {
	// February 2024 has 29 days.
	got := Convert(dec("290"), model.FrequencyMonthly, period.Day, date(2024, time.February, 1))
	assert.True(t, got.Equal(dec("10")), "got %s", got)
}

func TestConvert_QuarterlyTable(t *testing.T) {
	start := date(2024, time.January, 1)
	amount := dec("900")

	assert.True(t, Convert(amount, model.FrequencyQuarterly, period.Quarter, start).Equal(dec("900")))
	assert.True(t, Convert(amount, model.FrequencyQuarterly, period.Month, start).Equal(dec("300")))
	assert.True(t, Convert(amount, model.FrequencyQuarterly, period.Year, start).Equal(dec("3600")))
	assert.True(t, Convert(amount, model.FrequencyQuarterly, period.Day, start).Equal(dec("10")))
	assert.True(t, Convert(dec("1300"), model.FrequencyQuarterly, period.Week, start).Equal(dec("100")))
}

func TestConvert_YearlyTable(t *testing.T) {
	start := date(2024, time.January, 1)

	assert.True(t, Convert(dec("1200"), model.FrequencyYearly, period.Month, start).Equal(dec("100")))
	assert.True(t, Convert(dec("1200"), model.FrequencyYearly, period.Quarter, start).Equal(dec("300")))
	assert.True(t, Convert(dec("1200"), model.FrequencyYearly, period.Year, start).Equal(dec("1200")))
	assert.True(t, Convert(dec("365"), model.FrequencyYearly, period.Day, start).Equal(dec("1")))
	assert.True(t, Convert(dec("5200"), model.FrequencyYearly, period.Week, start).Equal(dec("100")))
}

func TestConvert_YearlyRoundTripsAcrossMonths(t *testing.T) {
	// 1200/year spread over 12 month periods sums back to exactly 1200.
	total := decimal.Zero
	p := period.Resolve(date(2024, time.January, 15), period.Month)
	for i := 0; i < 12; i++ {
		total = total.Add(Convert(dec("1200"), model.FrequencyYearly, period.Month, p.Start))
		p = p.Next()
	}
	assert.True(t, total.Equal(dec("1200")), "got %s", total)
}

func TestCostContribution_Inactive(t *testing.T) {
	c := monthlyCost("100", date(2024, time.January, 1))
	c.IsActive = false

	got, err := CostContribution(c, period.Resolve(date(2024, time.June, 1), period.Month))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCostContribution_OutsideWindow(t *testing.T) {
	june := period.Resolve(date(2024, time.June, 1), period.Month)

	// Starts after the period.
	late := monthlyCost("100", date(2024, time.July, 1))
	got, err := CostContribution(late, june)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	// Ended before the period.
	ended := monthlyCost("100", date(2023, time.January, 1))
	ended.EndDate = date(2024, time.May, 31)
	got, err = CostContribution(ended, june)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCostContribution_OpenEnded(t *testing.T) {
	c := monthlyCost("1200", date(2024, time.January, 1))

	got, err := CostContribution(c, period.Resolve(date(2030, time.June, 1), period.Month))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1200")))
}

func TestCostContribution_PartialOverlapStillCounts(t *testing.T) {
	// Cost starts mid-period; the interval overlap is what matters.
	c := monthlyCost("500", date(2024, time.June, 20))

	got, err := CostContribution(c, period.Resolve(date(2024, time.June, 1), period.Month))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("500")))
}

func TestCostContribution_OneTime(t *testing.T) {
	c := model.FixedCost{
		ID:        "FC-2024-002",
		Name:      "Laptop",
		Amount:    dec("2500"),
		Frequency: model.FrequencyOneTime,
		StartDate: date(2024, time.March, 15),
		IsActive:  true,
	}

	march := period.Resolve(date(2024, time.March, 1), period.Month)
	april := period.Resolve(date(2024, time.April, 1), period.Month)

	got, err := CostContribution(c, march)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("2500")))

	got, err = CostContribution(c, april)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCostContribution_MissingStartDate(t *testing.T) {
	c := monthlyCost("100", time.Time{})

	_, err := CostContribution(c, period.Resolve(date(2024, time.June, 1), period.Month))
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "FC-2024-001", verr.ID)
	assert.Equal(t, "start_date", verr.Field)
}

func TestDealContribution_OneTimePaid(t *testing.T) {
	d := model.Deal{
		ID:                  "D-2024-001",
		Type:                model.DealOneTime,
		Status:              model.StatusPaid,
		Amount:              dec("5000"),
		PaymentReceivedDate: date(2024, time.March, 15),
	}

	march := period.Resolve(date(2024, time.March, 1), period.Month)
	feb := period.Resolve(date(2024, time.February, 1), period.Month)
	april := period.Resolve(date(2024, time.April, 1), period.Month)

	got, err := DealContribution(d, march, Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("5000")))

	for _, p := range []period.Period{feb, april} {
		got, err := DealContribution(d, p, Options{})
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "period %s", p.Label())
	}
}

func TestDealContribution_OneTimeNotPaid(t *testing.T) {
	for _, status := range []model.DealStatus{model.StatusPotential, model.StatusConfirmed, model.StatusInvoiced} {
		d := model.Deal{
			ID:                  "D-2024-001",
			Type:                model.DealOneTime,
			Status:              status,
			Amount:              dec("5000"),
			PaymentReceivedDate: date(2024, time.March, 15),
		}
		got, err := DealContribution(d, period.Resolve(date(2024, time.March, 1), period.Month), Options{})
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "status %s", status)
	}
}

func TestDealContribution_PaidWithoutReceivedDate(t *testing.T) {
	d := model.Deal{
		ID:     "D-2024-002",
		Type:   model.DealOneTime,
		Status: model.StatusPaid,
		Amount: dec("5000"),
	}

	_, err := DealContribution(d, period.Resolve(date(2024, time.March, 1), period.Month), Options{})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "payment_received_date", verr.Field)
}

func TestDealContribution_RecurringProration(t *testing.T) {
	d := model.Deal{
		ID:            "D-2024-003",
		Type:          model.DealRecurring,
		Status:        model.StatusConfirmed,
		MonthlyAmount: dec("500"),
		StartDate:     date(2024, time.January, 1),
	}

	q1 := period.Resolve(date(2024, time.February, 1), period.Quarter)
	got, err := DealContribution(d, q1, Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1500")), "Q1 = 3 x 500")

	year := period.Resolve(date(2024, time.June, 1), period.Year)
	got, err = DealContribution(d, year, Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("6000")), "year = 12 x 500")
}

func TestDealContribution_RecurringBeforeStart(t *testing.T) {
	d := model.Deal{
		ID:            "D-2024-003",
		Type:          model.DealRecurring,
		MonthlyAmount: dec("500"),
		StartDate:     date(2024, time.May, 1),
	}

	got, err := DealContribution(d, period.Resolve(date(2024, time.April, 1), period.Month), Options{})
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestDealContribution_EndDateIgnoredByDefault(t *testing.T) {
	d := model.Deal{
		ID:            "D-2024-004",
		Type:          model.DealRecurring,
		MonthlyAmount: dec("500"),
		StartDate:     date(2024, time.January, 1),
		EndDate:       date(2024, time.June, 30),
	}

	dec24 := period.Resolve(date(2024, time.December, 1), period.Month)

	got, err := DealContribution(d, dec24, Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("500")), "open-ended unless enforcement is on")

	got, err = DealContribution(d, dec24, Options{EnforceDealEndDates: true})
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "enforced end date stops contribution")
}

func TestDealContribution_MissingMonthlyAmount(t *testing.T) {
	d := model.Deal{
		ID:        "D-2024-005",
		Type:      model.DealRecurring,
		StartDate: date(2024, time.January, 1),
	}

	_, err := DealContribution(d, period.Resolve(date(2024, time.March, 1), period.Month), Options{})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "monthly_amount", verr.Field)
	assert.Equal(t, "D-2024-005", verr.ID)
}

func TestDealContribution_UnknownType(t *testing.T) {
	d := model.Deal{ID: "D-2024-006", Type: model.DealType("installment")}

	_, err := DealContribution(d, period.Resolve(date(2024, time.March, 1), period.Month), Options{})
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "type", verr.Field)
}
