package main

import (
	"fmt"

	"github.com/meenmo/growthrate/calc"
	"github.com/meenmo/growthrate/growth"
)

func main() {
	in := growth.Input{
		BeginningValue: 25000,
		EndingValue:    1500000,
		Contribution:   12000,
		Periods:        30,
	}

	res, err := growth.Solve(in, growth.Options{})
	if err != nil {
		fmt.Printf("Solve: %v\n", err)
		return
	}

	fmt.Printf("Money contributed: %.2f\n", in.MoneyContributed())
	fmt.Printf("Growth rate: %.6f (%.2f%% per period)\n", res.Rate, res.Percent())
	fmt.Printf("Real growth after 3%% inflation: %.2f%%\n", res.RealPercent(1.03))
	fmt.Printf("Bracket: %s in %d probes, %d bisections\n", res.Bracket, res.BracketSteps, res.Iterations)

	if cagr, err := calc.CAGR(in.BeginningValue, in.EndingValue, float64(in.Periods)); err == nil {
		fmt.Printf("CAGR ignoring contributions: %.2f%%\n", (cagr-1)*100)
	}
}
