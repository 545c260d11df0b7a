package calculation

import "fmt"

// CalculationError reports a computation failure, such as a schedule that
// fails to amortize within the safety cap. It is distinct from input
// validation failure: inputs were well-formed, the computation itself could
// not complete. Composed calculators set Op to the failing side so callers
// can surface which half of a comparison broke.
type CalculationError struct {
	Op     string
	Reason string
	Cause  error
}

func (e *CalculationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *CalculationError) Unwrap() error {
	return e.Cause
}
