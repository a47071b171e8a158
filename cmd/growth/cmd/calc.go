package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/growthrate/calc"
	"github.com/meenmo/growthrate/utils"
)

func (a *app) newCAGRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cagr <beginning> <ending> <periods>",
		Short: "Compound growth rate between two values",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseAmounts(args, "beginning value", "ending value", "number of periods")
			if err != nil {
				return err
			}
			rate, err := calc.CAGR(vals[0], vals[1], vals[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"You've given a beginning value of %s, an ending value of %s, and %g periods\n"+
					"Your investment has grown at a rate of %s per period\n",
				amount(vals[0]), amount(vals[1]), vals[2], utils.PercentString(rate))
			return nil
		},
	}
}

func (a *app) newPeriodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "periods <beginning> <ending> <rate>",
		Short: "Periods needed to grow between two values at a rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseAmounts(args[:2], "beginning value", "ending value")
			if err != nil {
				return err
			}
			rate, err := utils.ParseRate(args[2])
			if err != nil {
				return err
			}
			periods, err := calc.PeriodsForGrowth(vals[0], vals[1], rate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"You've given a beginning value of %s, an ending value of %s, and a rate of change of %s.\n"+
					"It takes %.2f periods to grow your investment this much\n",
				amount(vals[0]), amount(vals[1]), utils.PercentString(rate), periods)
			return nil
		},
	}
}

func (a *app) newNetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "net <rate> <periods>",
		Short: "Total multiple after compounding a rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := utils.ParseRate(args[0])
			if err != nil {
				return err
			}
			vals, err := parseAmounts(args[1:], "number of periods")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Increased %.3f times\n", calc.NetIncrease(rate, vals[0]))
			return nil
		},
	}
}

func parseAmounts(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := parseAmount(args[i])
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}
