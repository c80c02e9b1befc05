package recurrence

import "fmt"

// Record kinds used in validation errors.
const (
	KindDeal      = "deal"
	KindFixedCost = "fixed_cost"
)

// ValidationError describes a record that cannot be normalized. These are
// propagated rather than coerced to zero so bad data never silently
// shrinks a total.
type ValidationError struct {
	Kind        string
	ID          string
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Kind, e.ID, e.Field, e.Description)
}
