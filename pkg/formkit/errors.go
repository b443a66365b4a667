package formkit

import "fmt"

// ConditionError wraps a visibility-evaluation failure with the element it
// occurred on. The element's visible state is unchanged when this error is
// returned.
type ConditionError struct {
	// Element is the name of the element whose condition failed.
	Element string
	// Expression is the visibility expression that was evaluated.
	Expression string
	// Err is the underlying evaluation error.
	Err error
}

// Error implements the error interface.
func (e *ConditionError) Error() string {
	return fmt.Sprintf("element %s: condition %q: %v", e.Element, e.Expression, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConditionError) Unwrap() error {
	return e.Err
}
