package calc_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/growthrate/calc"
	"github.com/meenmo/growthrate/growth"
)

func TestCAGR(t *testing.T) {
	t.Parallel()

	rate, err := calc.CAGR(1000, 2000, 10)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(2, 0.1), rate, 1e-12)

	_, err = calc.CAGR(0, 0, 5)
	assert.ErrorIs(t, err, calc.ErrNoMoney)
	_, err = calc.CAGR(0, 100, 5)
	assert.ErrorIs(t, err, calc.ErrInfiniteReturn)
	_, err = calc.CAGR(100, 200, 0)
	assert.ErrorIs(t, err, calc.ErrInvalidPeriods)
}

func TestCAGR_AgreesWithSolverWithoutContributions(t *testing.T) {
	t.Parallel()

	direct, err := calc.CAGR(1000, 2000, 10)
	require.NoError(t, err)

	res, err := growth.Solve(growth.Input{BeginningValue: 1000, EndingValue: 2000, Periods: 10}, growth.Options{Tolerance: 2})
	require.NoError(t, err)
	assert.InDelta(t, direct, res.Rate, 2e-4)
}

func TestPeriodsForGrowth(t *testing.T) {
	t.Parallel()

	periods, err := calc.PeriodsForGrowth(1000, 2000, 1.07)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2)/math.Log(1.07), periods, 1e-12)

	periods, err = calc.PeriodsForGrowth(500, 500, 0)
	require.NoError(t, err)
	assert.Zero(t, periods)

	_, err = calc.PeriodsForGrowth(500, 1000, 0)
	assert.ErrorIs(t, err, calc.ErrInfinitePeriods)
	_, err = calc.PeriodsForGrowth(500, 1000, 1)
	assert.ErrorIs(t, err, calc.ErrInfinitePeriods)
	_, err = calc.PeriodsForGrowth(-500, 1000, 1.05)
	assert.Error(t, err)
}

func TestNetIncrease(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.967151, calc.NetIncrease(1.07, 10), 1e-6)
	assert.Equal(t, 1.0, calc.NetIncrease(1.5, 0))
}

// referenceFunds is the plain year-by-year projection.
func referenceFunds(p calc.Plan) float64 {
	balance := p.StartingContribution
	for year := 0; year < p.YearsTillRetirement; year++ {
		balance *= p.NetRate()
		if year < p.YearsOfContribution {
			balance += p.YearlyContribution
		}
	}
	return balance
}

func TestRetirementFunds(t *testing.T) {
	t.Parallel()

	plans := []calc.Plan{
		{InflationRate: 1.03, CompoundingRate: 1.095, YearlyContribution: 10000, YearsOfContribution: 40, YearsTillRetirement: 40},
		{StartingContribution: 50000, InflationRate: 1.03, CompoundingRate: 1.07, YearlyContribution: 5000, YearsOfContribution: 20, YearsTillRetirement: 35},
		{StartingContribution: 1000, InflationRate: 1.02, CompoundingRate: 1.05, YearlyContribution: 100, YearsOfContribution: 50, YearsTillRetirement: 10},
		{StartingContribution: 1000, InflationRate: 1.0, CompoundingRate: 1.1, YearlyContribution: 100, YearsOfContribution: 0, YearsTillRetirement: 10},
	}
	for _, p := range plans {
		want := referenceFunds(p)
		assert.InDelta(t, want, calc.RetirementFunds(p), math.Abs(want)*1e-12, "plan=%+v", p)
	}
}

func TestMoneyContributed(t *testing.T) {
	t.Parallel()

	p := calc.Plan{StartingContribution: 2500, YearlyContribution: 10000, YearsOfContribution: 40}
	assert.Equal(t, 402500.0, calc.MoneyContributed(p))
}

func TestMultipliers(t *testing.T) {
	t.Parallel()

	p := calc.Plan{InflationRate: 1.0, CompoundingRate: 1.1, YearsOfContribution: 40, YearsTillRetirement: 40}
	got, err := calc.Multipliers(p, 3)
	require.NoError(t, err)

	want := []calc.Multiplier{
		{Factor: math.Pow(1.1, 40), YearsUsed: 0},
		{Factor: math.Pow(1.1, 20), YearsUsed: 20},
		{Factor: 1, YearsUsed: 40},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Fatalf("Multipliers mismatch (-want +got):\n%s", diff)
	}

	_, err = calc.Multipliers(p, 1)
	assert.Error(t, err)
}

func TestSafeWithdrawRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		years int
		want  float64
	}{
		{0, 0.0847},
		{3, 0.0847},
		{10, 0.0847},
		{11, 0.0478},
		{30, 0.0381},
		{33, 0.0354},
		{60, 0.0324},
		{95, 0.0324},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, calc.SafeWithdrawRate(tc.years), "years=%d", tc.years)
	}
}

func TestYearlyWithdrawal(t *testing.T) {
	t.Parallel()

	p := calc.Plan{InflationRate: 1.03, CompoundingRate: 1.095, YearlyContribution: 10000, YearsOfContribution: 40, YearsTillRetirement: 40, YearsOfRetirement: 30}
	assert.InDelta(t, calc.RetirementFunds(p)*0.0381, calc.YearlyWithdrawal(p), 1e-6)
}

func TestYearlyWithdrawal_ExplicitRate(t *testing.T) {
	t.Parallel()

	p := calc.Plan{InflationRate: 1.03, CompoundingRate: 1.095, YearlyContribution: 10000, YearsOfContribution: 40, YearsTillRetirement: 40, YearsOfRetirement: 30, WithdrawRate: 0.04}
	assert.Equal(t, 0.04, p.WithdrawalRate())
	assert.InDelta(t, calc.RetirementFunds(p)*0.04, calc.YearlyWithdrawal(p), 1e-6)

	p.WithdrawRate = 0
	assert.Equal(t, 0.0381, p.WithdrawalRate())
}
