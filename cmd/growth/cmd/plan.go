package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/meenmo/growthrate/calc"
	"github.com/meenmo/growthrate/utils"
)

type planKind int

const (
	planInterest planKind = iota
	planRetirement
)

type planFlags struct {
	starting     float64
	inflation    string
	compounding  string
	yearly       float64
	contribYears int
	tillRetire   int
	retireYears  int
	multipliers  int
	withdraw     string
}

func (a *app) newPlanCmd(kind planKind) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Project savings with yearly contributions, in today's currency",
		Args:  cobra.NoArgs,
	}
	if kind == planRetirement {
		cmd.Use = "retirement"
		cmd.Short = "Project retirement savings and a safe yearly withdrawal"
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, multipliers, err := a.buildPlan(cmd, kind, f)
		if err != nil {
			return err
		}
		a.logger.Debug().
			Float64("net_rate", p.NetRate()).
			Int("years_till_retirement", p.YearsTillRetirement).
			Msg("Projecting plan")

		w := cmd.OutOrStdout()
		printAssumptions(w, p, kind)
		if multipliers > 0 {
			if err := printMultipliers(w, p, multipliers); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "\nYou will put in a total of %s\n", money(calc.MoneyContributed(p)))
		fmt.Fprintf(w, "You will retire with the equivalent of %s in today's currency\n", money(calc.RetirementFunds(p)))
		if kind == planRetirement {
			printWithdrawal(w, p)
		}
		return nil
	}

	flags := cmd.Flags()
	flags.Float64VarP(&f.starting, "starting", "s", 0, "starting contribution")
	flags.StringVarP(&f.inflation, "inflation", "i", "", "inflation rate (1.03 or 3%)")
	flags.StringVarP(&f.compounding, "compounding", "o", "", "compounding rate (1.07 or 7%)")
	flags.Float64VarP(&f.yearly, "yearly", "c", 0, "yearly contribution")
	flags.IntVarP(&f.contribYears, "years-of-contribution", "n", 0, "years of contribution")
	flags.IntVarP(&f.multipliers, "multipliers", "m", 0, "show how much money multiplies when invested at this many evenly spaced points")
	switch kind {
	case planInterest:
		flags.IntVarP(&f.tillRetire, "years-till-retirement", "r", 0, "years till retirement")
	case planRetirement:
		flags.IntVarP(&f.tillRetire, "years-till-retirement", "t", 0, "years till retirement")
		flags.IntVarP(&f.retireYears, "years-of-retirement", "r", 0, "years of retirement")
		flags.StringVarP(&f.withdraw, "withdraw-rate", "w", "", "yearly withdraw rate (0.04 or 4%; default is the historical safe rate)")
	}
	return cmd
}

// buildPlan starts from the configured assumptions and applies the flags the
// user set explicitly.
func (a *app) buildPlan(cmd *cobra.Command, kind planKind, f planFlags) (calc.Plan, int, error) {
	as := a.cfg.Assumptions
	p := calc.Plan{
		StartingContribution: as.StartingContribution,
		InflationRate:        as.InflationRate,
		CompoundingRate:      as.CompoundingRate,
		YearlyContribution:   as.YearlyContribution,
		YearsOfContribution:  as.YearsOfContribution,
		YearsTillRetirement:  as.YearsTillRetirement,
		YearsOfRetirement:    as.YearsOfRetirement,
		WithdrawRate:         as.WithdrawRate,
	}
	if kind == planInterest {
		p.CompoundingRate = as.InterestCompoundingRate
	}
	multipliers := as.Multipliers

	changed := cmd.Flags().Changed
	var err error
	if changed("starting") {
		p.StartingContribution = f.starting
	}
	if changed("inflation") {
		if p.InflationRate, err = utils.ParseRate(f.inflation); err != nil {
			return calc.Plan{}, 0, err
		}
	}
	if changed("compounding") {
		if p.CompoundingRate, err = utils.ParseRate(f.compounding); err != nil {
			return calc.Plan{}, 0, err
		}
	}
	if changed("yearly") {
		p.YearlyContribution = f.yearly
	}
	if changed("years-of-contribution") {
		p.YearsOfContribution = f.contribYears
	}
	if changed("years-till-retirement") {
		p.YearsTillRetirement = f.tillRetire
	}
	if changed("years-of-retirement") {
		p.YearsOfRetirement = f.retireYears
	}
	if changed("multipliers") {
		multipliers = f.multipliers
	}
	if changed("withdraw-rate") {
		if p.WithdrawRate, err = utils.ParsePercent(f.withdraw); err != nil {
			return calc.Plan{}, 0, err
		}
		if p.WithdrawRate <= 0 || p.WithdrawRate >= 1 {
			return calc.Plan{}, 0, fmt.Errorf("withdraw rate must be between 0%% and 100%%, got %s", f.withdraw)
		}
	}
	return p, multipliers, nil
}

func printAssumptions(w io.Writer, p calc.Plan, kind planKind) {
	fmt.Fprintln(w, "Assuming:")
	fmt.Fprintf(w, "    A starting contribution of %s\n", money(p.StartingContribution))
	fmt.Fprintf(w, "    An inflation rate of %g (%s)\n", p.InflationRate, utils.PercentString(p.InflationRate))
	fmt.Fprintf(w, "    A compounding rate of %g (%s)\n", p.CompoundingRate, utils.PercentString(p.CompoundingRate))
	fmt.Fprintf(w, "    A yearly contribution of %s\n", money(p.YearlyContribution))
	fmt.Fprintf(w, "    %d years of contribution\n", p.YearsOfContribution)
	fmt.Fprintf(w, "    %d years till retirement\n", p.YearsTillRetirement)
	if kind == planRetirement {
		fmt.Fprintf(w, "    and %d years of retirement\n", p.YearsOfRetirement)
	}
	fmt.Fprintf(w, "\n    You'll have a net compounding rate of %.4f (%s)\n", p.NetRate(), utils.PercentString(p.NetRate()))
}

func printMultipliers(w io.Writer, p calc.Plan, n int) error {
	ms, err := calc.Multipliers(p, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nYour money will multiply by:")
	for _, m := range ms {
		fmt.Fprintf(w, "    %5.2f times if you invest it %2d years after the start of your retirement savings\n", m.Factor, m.YearsUsed)
	}
	return nil
}

func printWithdrawal(w io.Writer, p calc.Plan) {
	withdrawal := money(calc.YearlyWithdrawal(p))
	if p.WithdrawRate > 0 {
		fmt.Fprintf(w, "\nWithdrawing %.3f%% of your funds each year, you can withdraw\n\n"+
			"\t%s per year (today's currency)\n\n"+
			"These calculations do not factor in taxes, pensions, or social security.\n",
			p.WithdrawRate*100, withdrawal)
		return
	}
	fmt.Fprintf(w, "\nIf you expect to be retired for %d years, then the approximate rate which you\n"+
		"can safely withdraw funds each year is %.3f%%. At this rate, you can withdraw\n\n"+
		"\t%s per year (today's currency)\n\n"+
		"Historically, this rate has been >99%% safe for the given duration.\n\n"+
		"There is a significant, but non guaranteed, chance of ending up with\n"+
		"significantly more money at the end of the period. In the worst historical case,\n"+
		"funds are completely depleted at the end of the period.\n\n"+
		"These calculations do not factor in taxes, pensions, or social security.\n",
		p.YearsOfRetirement, p.WithdrawalRate()*100, withdrawal)
}
