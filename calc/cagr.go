// Package calc holds the closed-form and forward-iteration calculators that
// sit beside the growth solver: plain CAGR, periods needed for a given growth,
// net increase, and interest/retirement projections.
//
// Rates are multipliers throughout (1.07 = 7% per period).
package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoMoney         = errors.New("investment went from 0 to 0")
	ErrInfiniteReturn  = errors.New("returns are infinite from a zero beginning value")
	ErrInfinitePeriods = errors.New("infinite periods are required at this rate")
	ErrInvalidPeriods  = errors.New("number of periods must be positive")
)

// CAGR returns the compound growth multiplier per period that takes
// beginning to ending over periods: (ending/beginning)^(1/periods).
func CAGR(beginning, ending, periods float64) (float64, error) {
	switch {
	case beginning == 0 && ending == 0:
		return 0, fmt.Errorf("CAGR: %w", ErrNoMoney)
	case beginning == 0:
		return 0, fmt.Errorf("CAGR: %w", ErrInfiniteReturn)
	case periods <= 0:
		return 0, fmt.Errorf("CAGR: %w, got %v", ErrInvalidPeriods, periods)
	}
	return math.Pow(ending/beginning, 1/periods), nil
}

// PeriodsForGrowth returns how many periods it takes to grow beginning into
// ending at rate:
//
//	periods = log(ending / beginning) / log(rate)
func PeriodsForGrowth(beginning, ending, rate float64) (float64, error) {
	if beginning == ending {
		return 0, nil
	}
	if rate <= 0 || rate == 1 {
		return 0, fmt.Errorf("PeriodsForGrowth: %w (rate %v)", ErrInfinitePeriods, rate)
	}
	ratio := ending / beginning
	if ratio <= 0 || math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return 0, fmt.Errorf("PeriodsForGrowth: cannot grow %v into %v", beginning, ending)
	}
	return math.Log(ratio) / math.Log(rate), nil
}

// NetIncrease is the total multiple after compounding rate over periods.
func NetIncrease(rate, periods float64) float64 {
	return math.Pow(rate, periods)
}
