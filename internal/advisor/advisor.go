// Package advisor renders the plain-language cashflow context handed to
// the external chat advisor. The advisor only ever sees final totals,
// never individual records.
package advisor

import (
	"fmt"
	"strings"

	"github.com/ledgerline-dev/ledgerline/internal/cashflow"
)

// Context builds the totals block for one labeled period or range.
func Context(label string, s cashflow.Summary, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cashflow for %s:\n", label)
	fmt.Fprintf(&b, "- Income: %s %s\n", s.Income.StringFixed(2), currency)
	fmt.Fprintf(&b, "- Expenses: %s %s\n", s.Expenses.StringFixed(2), currency)
	fmt.Fprintf(&b, "- Net: %s %s\n", s.Net.StringFixed(2), currency)

	switch {
	case s.Net.IsPositive():
		fmt.Fprintf(&b, "The business ran a surplus of %s %s in this period.\n", s.Net.StringFixed(2), currency)
	case s.Net.IsNegative():
		fmt.Fprintf(&b, "The business ran a deficit of %s %s in this period.\n", s.Net.Abs().StringFixed(2), currency)
	default:
		b.WriteString("The business broke even in this period.\n")
	}
	return b.String()
}
