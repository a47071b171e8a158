package growth

import "math"

// Bisect narrows b until the evaluated return is within tol of in.EndingValue
// and returns that rate with the number of halvings performed.
//
// Evaluate(b.Low) <= EndingValue <= Evaluate(b.High) is kept as the loop
// invariant. The loop gives up with ErrNonConvergence after opts.MaxIterations
// halvings, or earlier once the midpoint collapses onto an endpoint.
func Bisect(b Bracket, in Input, tol float64, opts Options) (float64, int, error) {
	const op = "Bisect"

	if err := in.validate(op); err != nil {
		return 0, 0, err
	}
	if err := validateTolerance(op, in, tol); err != nil {
		return 0, 0, err
	}
	if math.IsNaN(b.Low) || math.IsNaN(b.High) || b.Low > b.High {
		return 0, 0, newError(op, in, 0, ErrDegenerateInput, "invalid bracket %s", b)
	}
	return bisect(op, b, in, tol, opts.withDefaults(in))
}

func bisect(op string, b Bracket, in Input, tol float64, opts Options) (float64, int, error) {
	target := in.EndingValue
	low, high := b.Low, b.High

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		mid := low + (high-low)/2
		value := Evaluate(mid, in)
		opts.report(Step{Phase: PhaseBisect, Index: iter, Low: low, High: high, Rate: mid, Value: value})

		if math.Abs(value-target) <= tol {
			return mid, iter, nil
		}
		if mid == low || mid == high {
			// low and high are equal or adjacent floats.
			return mid, iter, newError(op, in, iter, ErrNonConvergence,
				"bracket %s cannot be split further; tolerance %.6g is too tight", Bracket{low, high}, tol)
		}

		if value > target {
			high = mid
		} else {
			low = mid
		}
	}

	return low + (high-low)/2, opts.MaxIterations, newError(op, in, opts.MaxIterations, ErrNonConvergence,
		"last bracket %s", Bracket{low, high})
}
