package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/growthrate/config"
	"github.com/meenmo/growthrate/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zerolog.Logger
}

// NewRootCmd builds the growth command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "growth",
		Short: "Growth-rate and compounding calculators",
		Long: `growth answers questions about compounding money.

  rate        growth rate of a balance that also received a contribution every period
  batch       many growth-rate solves from JSON
  cagr        compound growth rate between two values
  periods     periods needed to grow between two values at a rate
  net         total multiple after compounding a rate
  interest    project savings with yearly contributions
  retirement  project savings and a safe yearly withdrawal

Rates are accepted as multipliers (1.07) or percentages (7%).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every solver step")

	root.AddCommand(
		a.newRateCmd(),
		a.newBatchCmd(),
		a.newCAGRCmd(),
		a.newPeriodsCmd(),
		a.newNetCmd(),
		a.newPlanCmd(planInterest),
		a.newPlanCmd(planRetirement),
		a.newConfigCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.verbose {
		cfg.Log.Level = logging.LogLevelTrace
	}

	logger, err := logging.NewLogger(&cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug().
		Str("config_file", a.cfgFile).
		Float64("tolerance_divisor", cfg.Solver.ToleranceDivisor).
		Int("max_iterations", cfg.Solver.MaxIterations).
		Int("max_bracket_steps", cfg.Solver.MaxBracketSteps).
		Msg("Configuration loaded")
	return nil
}
