package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/growthrate/growth"
	"github.com/meenmo/growthrate/utils"
)

func (a *app) newRateCmd() *cobra.Command {
	var (
		tolerance float64
		inflation string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "rate <beginning> <ending> <contribution> <periods>",
		Short: "Approximate the growth rate of a balance with periodic contributions",
		Long: `Solves ending = Σ_{i=0}^{n-1} contribution·r^i + beginning·r^n for r.

The answer is approximate: by default it is accepted once the projected ending
value is within 0.1% of the given one.`,
		Example: "  growth rate 0 1500000 10000 40\n  growth rate 1000 2000 0 10 --inflation 2.5%",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseSolveArgs(args)
			if err != nil {
				return err
			}

			inflationRate := a.cfg.Assumptions.InflationRate
			if cmd.Flags().Changed("inflation") {
				if inflationRate, err = utils.ParseRate(inflation); err != nil {
					return err
				}
			}

			opts := a.solverOptions(in.EndingValue)
			if cmd.Flags().Changed("tolerance") {
				opts.Tolerance = tolerance
			}

			res, err := growth.Solve(in, opts)
			if err != nil {
				return describeSolveError(err)
			}
			a.logger.Debug().
				Str("bracket", res.Bracket.String()).
				Int("bracket_steps", res.BracketSteps).
				Int("iterations", res.Iterations).
				Msg("Growth rate solved")

			out := newSolveOutput("", res, inflationRate)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Money grew at an approximate growth rate of: %.6f (%.2f%%)\n", res.Rate, out.RatePercent)
			inflationPercent := utils.ToPercent(inflationRate)
			fmt.Fprintf(w, "Assuming an inflation rate of %.2f%%, this would cut real growth down to %.2f%%, "+
				"or require a growth rate of %.2f%% to maintain this value after inflation\n",
				inflationPercent, out.RealRatePercent, out.RatePercent+inflationPercent)
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "allowable error on the ending value (default |ending| / tolerance_divisor)")
	cmd.Flags().StringVar(&inflation, "inflation", "", "inflation rate used for the real growth rate (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// solverOptions applies the configured bounds and, with --verbose, traces
// every evaluation.
func (a *app) solverOptions(endingValue float64) growth.Options {
	opts := a.cfg.Solver.Options(endingValue)
	if a.logger.GetLevel() <= zerolog.TraceLevel {
		opts.OnStep = func(s growth.Step) {
			a.logger.Trace().
				Str("phase", string(s.Phase)).
				Int("step", s.Index).
				Float64("low", s.Low).
				Float64("high", s.High).
				Float64("rate", s.Rate).
				Float64("value", s.Value).
				Msg("Evaluated rate")
		}
	}
	return opts
}

func parseSolveArgs(args []string) (growth.Input, error) {
	names := []string{"beginning value", "ending value", "contribution"}
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := parseAmount(args[i])
		if err != nil {
			return growth.Input{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		values[i] = v
	}
	periods, err := strconv.Atoi(strings.TrimSpace(args[3]))
	if err != nil {
		return growth.Input{}, fmt.Errorf("invalid number of periods %q", args[3])
	}
	return growth.Input{
		BeginningValue: values[0],
		EndingValue:    values[1],
		Contribution:   values[2],
		Periods:        periods,
	}, nil
}

// parseAmount accepts plain numbers with optional thousands separators and
// a leading "$".
func parseAmount(s string) (float64, error) {
	clean := strings.NewReplacer(",", "", "_", "", "$", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// describeSolveError names the failed condition in terms a user can act on.
func describeSolveError(err error) error {
	switch {
	case errors.Is(err, growth.ErrMoneyShrank):
		return fmt.Errorf("money shrank: the ending value is less than the money put in, so no growth rate explains it (%w)", err)
	case errors.Is(err, growth.ErrDegenerateInput):
		return fmt.Errorf("a growth rate is undefined for these inputs (%w)", err)
	case errors.Is(err, growth.ErrNonConvergence):
		return fmt.Errorf("the solver did not converge; try a larger --tolerance (%w)", err)
	default:
		return err
	}
}
