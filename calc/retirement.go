package calc

import (
	"fmt"

	"github.com/meenmo/growthrate/growth"
	"github.com/meenmo/growthrate/utils"
)

// Plan describes a yearly savings plan. Rates are multipliers.
type Plan struct {
	StartingContribution float64
	InflationRate        float64
	CompoundingRate      float64
	YearlyContribution   float64
	YearsOfContribution  int
	YearsTillRetirement  int
	YearsOfRetirement    int
	// WithdrawRate is the yearly fraction withdrawn in retirement (0.04 = 4%).
	// Zero uses SafeWithdrawRate.
	WithdrawRate float64
}

// NetRate is the compounding rate after inflation, in today's currency.
func (p Plan) NetRate() float64 {
	return p.CompoundingRate - p.InflationRate + 1
}

// Compound grows start by rate for the given number of periods.
func Compound(start, rate float64, periods int) float64 {
	for i := 0; i < periods; i++ {
		start *= rate
	}
	return start
}

// RetirementFunds projects the balance at retirement in today's currency.
//
// Each year the balance compounds at the net rate and then receives the
// yearly contribution, for as long as contributions last. The contributing
// years follow the same equation the growth solver inverts; any years left
// before retirement only compound.
func RetirementFunds(p Plan) float64 {
	contributing := min(p.YearsOfContribution, p.YearsTillRetirement)
	if contributing < 0 {
		contributing = 0
	}
	rate := p.NetRate()
	balance := growth.Evaluate(rate, growth.Input{
		BeginningValue: p.StartingContribution,
		Contribution:   p.YearlyContribution,
		Periods:        contributing,
	})
	return Compound(balance, rate, p.YearsTillRetirement-contributing)
}

// MoneyContributed is the nominal total paid in over the plan.
func MoneyContributed(p Plan) float64 {
	return p.YearlyContribution*float64(p.YearsOfContribution) + p.StartingContribution
}

// Multiplier is how many times money grows when invested YearsUsed years
// after the plan starts and left until retirement.
type Multiplier struct {
	Factor    float64
	YearsUsed int
}

// Multipliers spreads n investment start points evenly across the
// contribution years and reports the growth multiple for each.
func Multipliers(p Plan, n int) ([]Multiplier, error) {
	if n < 2 {
		return nil, fmt.Errorf("Multipliers: need at least 2 points, got %d", n)
	}
	step := p.YearsOfContribution / (n - 1)
	out := make([]Multiplier, 0, n)
	for k := 0; k < n; k++ {
		used := k * step
		out = append(out, Multiplier{
			Factor:    Compound(1, p.NetRate(), p.YearsTillRetirement-used),
			YearsUsed: used,
		})
	}
	return out, nil
}

// safeWithdrawRates maps years of retirement to a withdraw rate that has
// historically survived that long.
// See http://www.retireearlyhomepage.com/restud1.html
var safeWithdrawRates = map[int]float64{
	10: 0.0847,
	20: 0.0478,
	30: 0.0381,
	40: 0.0354,
	50: 0.0335,
	60: 0.0324,
}

// SafeWithdrawRate returns the yearly fraction of funds that can be withdrawn
// for the given retirement length. Lengths round up to the next decade, so the
// estimate errs on the safe side.
func SafeWithdrawRate(yearsOfRetirement int) float64 {
	years := yearsOfRetirement
	if years > 3 {
		years = utils.RoundUpToNearestTen(years)
	}
	years = max(10, min(60, years))
	return safeWithdrawRates[years]
}

// WithdrawalRate is the plan's withdraw rate, or the safe rate for its
// retirement length when none is set.
func (p Plan) WithdrawalRate() float64 {
	if p.WithdrawRate > 0 {
		return p.WithdrawRate
	}
	return SafeWithdrawRate(p.YearsOfRetirement)
}

// YearlyWithdrawal is the yearly withdrawal from the projected funds.
func YearlyWithdrawal(p Plan) float64 {
	return RetirementFunds(p) * p.WithdrawalRate()
}
