package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// CostsHeader is the CSV header for fixed-costs.csv.
const CostsHeader = "cost_id,name,category,amount,frequency,start_date,end_date,is_active"

const (
	costFields      = 8
	colCostID       = 0
	colCostName     = 1
	colCostCategory = 2
	colCostAmount   = 3
	colCostFreq     = 4
	colCostStart    = 5
	colCostEnd      = 6
	colCostActive   = 7
)

// ReadCosts reads all fixed costs from a fixed-costs.csv reader.
func ReadCosts(r io.Reader) ([]model.FixedCost, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = costFields

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading fixed costs CSV: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	var costs []model.FixedCost
	for i, rec := range recs[1:] {
		c, err := UnmarshalCost(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		costs = append(costs, c)
	}
	return costs, nil
}

// WriteCosts writes fixed costs to a fixed-costs.csv writer, header included.
func WriteCosts(w io.Writer, costs []model.FixedCost) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CostsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range costs {
		if err := cw.Write(MarshalCost(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendCosts appends fixed costs to an existing fixed-costs.csv writer.
func AppendCosts(w io.Writer, costs []model.FixedCost) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, c := range costs {
		if err := cw.Write(MarshalCost(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalCost converts a FixedCost to a CSV row.
func MarshalCost(c model.FixedCost) []string {
	row := make([]string, costFields)
	row[colCostID] = c.ID
	row[colCostName] = c.Name
	row[colCostCategory] = c.Category
	if !c.Amount.IsZero() {
		row[colCostAmount] = c.Amount.StringFixed(2)
	}
	row[colCostFreq] = string(c.Frequency)
	row[colCostStart] = formatDate(c.StartDate)
	row[colCostEnd] = formatDate(c.EndDate)
	row[colCostActive] = strconv.FormatBool(c.IsActive)
	return row
}

// UnmarshalCost converts a CSV row to a FixedCost.
func UnmarshalCost(record []string) (model.FixedCost, error) {
	if len(record) != costFields {
		return model.FixedCost{}, fmt.Errorf("expected %d fields, got %d", costFields, len(record))
	}

	freq := model.CostFrequency(record[colCostFreq])
	if !model.ValidFrequency(freq) {
		return model.FixedCost{}, fmt.Errorf("unknown frequency %q", record[colCostFreq])
	}

	amount, err := parseDecimal(record[colCostAmount], "amount")
	if err != nil {
		return model.FixedCost{}, err
	}

	start, err := parseDate(record[colCostStart], "start_date")
	if err != nil {
		return model.FixedCost{}, err
	}
	end, err := parseDate(record[colCostEnd], "end_date")
	if err != nil {
		return model.FixedCost{}, err
	}

	active, err := strconv.ParseBool(record[colCostActive])
	if err != nil {
		return model.FixedCost{}, fmt.Errorf("parsing is_active %q: %w", record[colCostActive], err)
	}

	return model.FixedCost{
		ID:        record[colCostID],
		Name:      record[colCostName],
		Category:  record[colCostCategory],
		Amount:    amount,
		Frequency: freq,
		StartDate: start,
		EndDate:   end,
		IsActive:  active,
	}, nil
}
