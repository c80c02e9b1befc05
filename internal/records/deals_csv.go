// Package records persists deal and fixed-cost records as CSV files and
// provides file-backed services over them.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// DealsHeader is the CSV header for deals.csv.
const DealsHeader = "deal_id,client,type,status,amount,monthly_amount,start_date,end_date,expected_date,probability,payment_received_date,notes"

const (
	dealFields      = 12
	dateFormat      = "2006-01-02"
	colDealID       = 0
	colDealClient   = 1
	colDealType     = 2
	colDealStatus   = 3
	colDealAmount   = 4
	colDealMonthly  = 5
	colDealStart    = 6
	colDealEnd      = 7
	colDealExpected = 8
	colDealProb     = 9
	colDealReceived = 10
	colDealNotes    = 11
)

// ReadDeals reads all deals from a deals.csv reader.
func ReadDeals(r io.Reader) ([]model.Deal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = dealFields

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading deals CSV: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	var deals []model.Deal
	for i, rec := range recs[1:] {
		d, err := UnmarshalDeal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		deals = append(deals, d)
	}
	return deals, nil
}

// WriteDeals writes deals to a deals.csv writer, header included.
func WriteDeals(w io.Writer, deals []model.Deal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(DealsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, d := range deals {
		if err := cw.Write(MarshalDeal(d)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendDeals appends deals to an existing deals.csv writer, no header.
func AppendDeals(w io.Writer, deals []model.Deal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, d := range deals {
		if err := cw.Write(MarshalDeal(d)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalDeal converts a Deal to a CSV row.
func MarshalDeal(d model.Deal) []string {
	row := make([]string, dealFields)
	row[colDealID] = d.ID
	row[colDealClient] = d.Client
	row[colDealType] = string(d.Type)
	row[colDealStatus] = string(d.Status)

	if !d.Amount.IsZero() {
		row[colDealAmount] = d.Amount.StringFixed(2)
	}
	if !d.MonthlyAmount.IsZero() {
		row[colDealMonthly] = d.MonthlyAmount.StringFixed(2)
	}

	row[colDealStart] = formatDate(d.StartDate)
	row[colDealEnd] = formatDate(d.EndDate)
	row[colDealExpected] = formatDate(d.ExpectedDate)

	if !d.Probability.IsZero() {
		row[colDealProb] = d.Probability.String()
	}

	row[colDealReceived] = formatDate(d.PaymentReceivedDate)
	row[colDealNotes] = d.Notes
	return row
}

// UnmarshalDeal converts a CSV row to a Deal. Malformed dates and amounts
// fail here, naming the field, so bad rows never reach aggregation.
func UnmarshalDeal(record []string) (model.Deal, error) {
	if len(record) != dealFields {
		return model.Deal{}, fmt.Errorf("expected %d fields, got %d", dealFields, len(record))
	}

	dealType := model.DealType(record[colDealType])
	if dealType != model.DealOneTime && dealType != model.DealRecurring {
		return model.Deal{}, fmt.Errorf("unknown deal type %q", record[colDealType])
	}

	status := model.DealStatus(record[colDealStatus])
	if !model.ValidStatus(status) {
		return model.Deal{}, fmt.Errorf("unknown deal status %q", record[colDealStatus])
	}

	amount, err := parseDecimal(record[colDealAmount], "amount")
	if err != nil {
		return model.Deal{}, err
	}
	monthly, err := parseDecimal(record[colDealMonthly], "monthly_amount")
	if err != nil {
		return model.Deal{}, err
	}
	probability, err := parseDecimal(record[colDealProb], "probability")
	if err != nil {
		return model.Deal{}, err
	}

	start, err := parseDate(record[colDealStart], "start_date")
	if err != nil {
		return model.Deal{}, err
	}
	end, err := parseDate(record[colDealEnd], "end_date")
	if err != nil {
		return model.Deal{}, err
	}
	expected, err := parseDate(record[colDealExpected], "expected_date")
	if err != nil {
		return model.Deal{}, err
	}
	received, err := parseDate(record[colDealReceived], "payment_received_date")
	if err != nil {
		return model.Deal{}, err
	}

	return model.Deal{
		ID:                  record[colDealID],
		Client:              record[colDealClient],
		Type:                dealType,
		Status:              status,
		Amount:              amount,
		MonthlyAmount:       monthly,
		StartDate:           start,
		EndDate:             end,
		ExpectedDate:        expected,
		Probability:         probability,
		PaymentReceivedDate: received,
		Notes:               record[colDealNotes],
	}, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return t, nil
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}
