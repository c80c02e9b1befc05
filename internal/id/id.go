package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Record ID prefixes.
const (
	PrefixDeal = "D"
	PrefixCost = "FC"
)

// FormatDealID returns a deal ID like "D-2024-001".
func FormatDealID(year, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", PrefixDeal, year, seq)
}

// FormatCostID returns a fixed-cost ID like "FC-2024-001".
func FormatCostID(year, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", PrefixCost, year, seq)
}

// Parse splits a record ID into prefix, year and sequence.
func Parse(recordID string) (prefix string, year, seq int, err error) {
	parts := strings.SplitN(recordID, "-", 3)
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("invalid record ID format: %q", recordID)
	}

	prefix = parts[0]
	if prefix != PrefixDeal && prefix != PrefixCost {
		return "", 0, 0, fmt.Errorf("unknown record ID prefix in %q", recordID)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid year in record ID %q: %w", recordID, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid sequence in record ID %q: %w", recordID, err)
	}

	return prefix, year, seq, nil
}

// NextSeq returns the next free sequence for a year given existing IDs.
// IDs that do not parse or belong to other years are skipped.
func NextSeq(ids []string, year int) int {
	maxSeq := 0
	for _, recordID := range ids {
		_, y, seq, err := Parse(recordID)
		if err != nil || y != year {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
