package eval

import "fmt"

// EvaluationError indicates the predictor failed on one record. Tabulation
// aborts on the first such failure; a partial result table would silently
// misrepresent aggregate accuracy to the report and plot consumers, so none
// is ever returned.
type EvaluationError struct {
	Index int // position of the failing record in the input sequence
	Err   error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluate record %d: %v", e.Index, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
