package growth

import (
	"errors"
	"fmt"
)

var (
	// ErrMoneyShrank means the ending value is below what was put in at face
	// value, so no rate >= 1 can produce it.
	ErrMoneyShrank = errors.New("money shrank")

	// ErrDegenerateInput covers inputs for which a rate is undefined: zero or
	// negative periods, non-finite values, or a non-positive tolerance.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNonConvergence means an iteration cap was hit before the tolerance was met.
	ErrNonConvergence = errors.New("did not converge")
)

// SolveError wraps one of the sentinel errors with the operation and input
// that produced it.
type SolveError struct {
	Op         string
	Input      Input
	Iterations int
	Reason     string
	Err        error
}

func (e *SolveError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Err)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Iterations > 0 {
		msg += fmt.Sprintf(" (after %d iterations)", e.Iterations)
	}
	return msg
}

func (e *SolveError) Unwrap() error {
	return e.Err
}

func newError(op string, in Input, iterations int, err error, format string, args ...any) error {
	return &SolveError{
		Op:         op,
		Input:      in,
		Iterations: iterations,
		Reason:     fmt.Sprintf(format, args...),
		Err:        err,
	}
}
