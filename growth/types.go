package growth

import (
	"fmt"
	"math"
)

// Input holds the known quantities of a periodic-contribution investment.
//
// The unknown is the per-period growth rate r in
//
//	EndingValue = Σ_{i=0}^{Periods-1} Contribution·r^i + BeginningValue·r^Periods
type Input struct {
	// BeginningValue is the balance before the first period (may be 0).
	BeginningValue float64
	// EndingValue is the observed balance after the last period.
	EndingValue float64
	// Contribution is the constant amount added every period.
	Contribution float64
	// Periods is the number of compounding periods.
	Periods int
}

// MoneyContributed is the nominal principal put in, ignoring growth.
func (in Input) MoneyContributed() float64 {
	return in.Contribution*float64(in.Periods-1) + in.BeginningValue
}

func (in Input) validate(op string) error {
	if in.Periods <= 0 {
		return newError(op, in, 0, ErrDegenerateInput, "a rate is undefined over %d periods", in.Periods)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"beginning value", in.BeginningValue},
		{"ending value", in.EndingValue},
		{"contribution", in.Contribution},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return newError(op, in, 0, ErrDegenerateInput, "%s is not finite", v.name)
		}
	}
	return nil
}

// Bracket is a rate interval whose evaluated returns straddle the ending value.
type Bracket struct {
	Low  float64
	High float64
}

func (b Bracket) String() string {
	return fmt.Sprintf("[%.6f, %.6f]", b.Low, b.High)
}

// Result is the output of Solve.
type Result struct {
	// Rate is the per-period multiplier (1.07 = 7% per period).
	Rate    float64
	Bracket Bracket
	// BracketSteps counts the probe rates tried while bracketing.
	BracketSteps int
	// Iterations counts bisection steps.
	Iterations int
}

// Percent returns the rate as a percentage, e.g. 1.07 -> 7.
func (r Result) Percent() float64 {
	return (r.Rate - 1) * 100
}

// RealPercent subtracts an inflation rate (given as a multiplier, e.g. 1.03)
// from Percent.
func (r Result) RealPercent(inflationRate float64) float64 {
	return r.Percent() - (inflationRate-1)*100
}

// Phase identifies which part of the solver produced a Step.
type Phase string

const (
	PhaseBracket Phase = "bracket"
	PhaseBisect  Phase = "bisect"
)

// Step is one evaluation of the return function during a solve.
type Step struct {
	Phase Phase
	Index int
	Low   float64
	High  float64
	Rate  float64
	Value float64
}

const (
	DefaultMaxIterations = 200
	// DefaultMaxBracketSteps bounds the doubling search. The last probe is
	// 1 + 0.05·2^63 (about 4.6e17); targets needing a larger rate fail with
	// ErrNonConvergence.
	DefaultMaxBracketSteps = 64
)

// Options tunes a solve. Zero fields take their defaults.
type Options struct {
	// Tolerance is the allowable absolute error on the ending value.
	// Defaults to DefaultTolerance(EndingValue).
	Tolerance       float64
	MaxIterations   int
	MaxBracketSteps int
	// OnStep, if set, is called after every evaluation.
	OnStep func(Step)
}

// DefaultTolerance is 0.1% of the target ending value.
func DefaultTolerance(endingValue float64) float64 {
	return math.Abs(endingValue) / 1000
}

func (o Options) withDefaults(in Input) Options {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance(in.EndingValue)
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxBracketSteps <= 0 {
		o.MaxBracketSteps = DefaultMaxBracketSteps
	}
	return o
}

func (o Options) report(s Step) {
	if o.OnStep != nil {
		o.OnStep(s)
	}
}

func validateTolerance(op string, in Input, tol float64) error {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return newError(op, in, 0, ErrDegenerateInput, "tolerance must be positive and finite, got %v", tol)
	}
	return nil
}
