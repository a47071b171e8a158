package growth

import "math"

const (
	// initialGuess is the first rate probed (5% per period).
	initialGuess = 1.05
	floorRate    = 1.00
)

// FindBracket returns a rate interval whose evaluated returns straddle
// in.EndingValue.
//
// The probe starts at 1.05. On undershoot the excess over 1.0 is doubled
// (1.05, 1.10, 1.20, 1.40, ...) until the target is reached, which keeps the
// search within O(log r) evaluations for a monotone return function.
func FindBracket(in Input, tol float64, opts Options) (Bracket, error) {
	const op = "FindBracket"

	if err := in.validate(op); err != nil {
		return Bracket{}, err
	}
	if err := validateTolerance(op, in, tol); err != nil {
		return Bracket{}, err
	}
	opts = opts.withDefaults(in)
	b, _, err := findBracket(op, in, tol, opts)
	return b, err
}

// findBracket assumes validated input and returns the number of evaluations made.
func findBracket(op string, in Input, tol float64, opts Options) (Bracket, int, error) {
	target := in.EndingValue

	if contributed := in.MoneyContributed(); target < contributed {
		return Bracket{}, 0, newError(op, in, 0, ErrMoneyShrank,
			"ending value %.2f is below the %.2f contributed", target, contributed)
	}

	guess := initialGuess
	value := Evaluate(guess, in)
	steps := 1
	opts.report(Step{Phase: PhaseBracket, Index: steps, Low: floorRate, High: guess, Rate: guess, Value: value})

	switch {
	case math.Abs(value-target) <= tol:
		return Bracket{Low: guess, High: guess}, steps, nil
	case value > target:
		// Face-value contributions alone already overshoot.
		if atFloor := Evaluate(floorRate, in); atFloor-target > tol {
			return Bracket{}, steps, newError(op, in, 0, ErrMoneyShrank,
				"ending value %.2f is below the %.2f returned with no growth", target, atFloor)
		}
		return Bracket{Low: floorRate, High: guess}, steps, nil
	}

	low := guess
	for value < target {
		if steps >= opts.MaxBracketSteps {
			return Bracket{}, steps, newError(op, in, steps, ErrNonConvergence,
				"no upper bound found below rate %.6g", guess)
		}
		low = guess
		guess = doubleRate(guess)
		value = Evaluate(guess, in)
		steps++
		opts.report(Step{Phase: PhaseBracket, Index: steps, Low: low, High: guess, Rate: guess, Value: value})
		if math.IsNaN(value) {
			return Bracket{}, steps, newError(op, in, steps, ErrNonConvergence,
				"return is undefined at rate %.6g", guess)
		}
	}
	return Bracket{Low: low, High: guess}, steps, nil
}

// doubleRate doubles the excess of rate over 1.0.
func doubleRate(rate float64) float64 {
	return (rate-1)*2 + 1
}
