// Package growth solves for the per-period growth rate of an investment that
// receives a constant contribution every period on top of a starting balance.
//
// No closed form exists for the rate, so Solve brackets it by doubling the
// excess over 1.0 of a 5% probe and then bisects the bracket. Every call is a
// pure function of its arguments and may run concurrently with others.
package growth

// Solve returns the growth rate r for which Evaluate(r, in) is within
// opts.Tolerance of in.EndingValue.
//
// Errors wrap ErrDegenerateInput, ErrMoneyShrank or ErrNonConvergence and can
// be matched with errors.Is.
func Solve(in Input, opts Options) (Result, error) {
	const op = "Solve"

	if err := in.validate(op); err != nil {
		return Result{}, err
	}
	opts = opts.withDefaults(in)
	if err := validateTolerance(op, in, opts.Tolerance); err != nil {
		return Result{}, err
	}

	bracket, steps, err := findBracket(op, in, opts.Tolerance, opts)
	if err != nil {
		return Result{}, err
	}

	rate, iterations, err := bisect(op, bracket, in, opts.Tolerance, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Rate:         rate,
		Bracket:      bracket,
		BracketSteps: steps,
		Iterations:   iterations,
	}, nil
}
