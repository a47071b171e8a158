package growth

// Evaluate returns the ending value produced by in at the given per-period rate:
//
//	BeginningValue·rate^n + Contribution·Σ_{i=0}^{n-1} rate^i
//
// The sum is folded period by period rather than taken from the geometric
// series closed form, which divides by (rate − 1).
// With Periods <= 0 it returns BeginningValue.
func Evaluate(rate float64, in Input) float64 {
	if in.Periods <= 0 {
		return in.BeginningValue
	}

	balance := in.BeginningValue
	stream := in.Contribution
	for i := 0; i < in.Periods-1; i++ {
		balance *= rate
		stream = stream*rate + in.Contribution
	}
	return balance*rate + stream
}
