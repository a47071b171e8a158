// Package config holds the assumptions and solver settings shared by the
// growth command-line tools.
//
// Values are resolved in order: built-in defaults, an optional TOML or YAML
// file, then GROWTH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/growthrate/growth"
	"github.com/meenmo/growthrate/logging"
)

type Config struct {
	Assumptions Assumptions    `toml:"assumptions" yaml:"assumptions" env:""`
	Solver      Solver         `toml:"solver" yaml:"solver" env:""`
	Log         logging.Config `toml:"log" yaml:"log" env:""`
}

// Assumptions are the default plan inputs for the projection commands.
// Rates are multipliers (1.03 = 3%).
type Assumptions struct {
	InflationRate   float64 `toml:"inflation_rate" yaml:"inflation_rate" env:"GROWTH_INFLATION_RATE" validate:"gt=0"`
	CompoundingRate float64 `toml:"compounding_rate" yaml:"compounding_rate" env:"GROWTH_COMPOUNDING_RATE" validate:"gt=0"`
	// InterestCompoundingRate replaces CompoundingRate for the interest command.
	InterestCompoundingRate float64 `toml:"interest_compounding_rate" yaml:"interest_compounding_rate" env:"GROWTH_INTEREST_COMPOUNDING_RATE" validate:"gt=0"`
	StartingContribution    float64 `toml:"starting_contribution" yaml:"starting_contribution" env:"GROWTH_STARTING_CONTRIBUTION" validate:"gte=0"`
	YearlyContribution      float64 `toml:"yearly_contribution" yaml:"yearly_contribution" env:"GROWTH_YEARLY_CONTRIBUTION" validate:"gte=0"`
	YearsOfContribution     int     `toml:"years_of_contribution" yaml:"years_of_contribution" env:"GROWTH_YEARS_OF_CONTRIBUTION" validate:"gte=0"`
	YearsTillRetirement     int     `toml:"years_till_retirement" yaml:"years_till_retirement" env:"GROWTH_YEARS_TILL_RETIREMENT" validate:"gte=0"`
	YearsOfRetirement       int     `toml:"years_of_retirement" yaml:"years_of_retirement" env:"GROWTH_YEARS_OF_RETIREMENT" validate:"gte=0"`
	// Multipliers is the number of investment start points to report; 0 disables.
	Multipliers int `toml:"multipliers" yaml:"multipliers" env:"GROWTH_MULTIPLIERS" validate:"eq=0|gte=2"`
	// WithdrawRate is the yearly fraction withdrawn in retirement; 0 uses the
	// historical safe rate for the retirement length.
	WithdrawRate float64 `toml:"withdraw_rate" yaml:"withdraw_rate" env:"GROWTH_WITHDRAW_RATE" validate:"gte=0,lt=1"`
}

// Solver bounds the growth-rate search.
type Solver struct {
	// ToleranceDivisor sets the allowable error to |ending value| / divisor.
	ToleranceDivisor float64 `toml:"tolerance_divisor" yaml:"tolerance_divisor" env:"GROWTH_TOLERANCE_DIVISOR" validate:"gt=0"`
	MaxIterations    int     `toml:"max_iterations" yaml:"max_iterations" env:"GROWTH_MAX_ITERATIONS" validate:"gt=0"`
	MaxBracketSteps  int     `toml:"max_bracket_steps" yaml:"max_bracket_steps" env:"GROWTH_MAX_BRACKET_STEPS" validate:"gt=0"`
}

// Options converts the solver settings into growth.Options for a target
// ending value.
func (s Solver) Options(endingValue float64) growth.Options {
	return growth.Options{
		Tolerance:       math.Abs(endingValue) / s.ToleranceDivisor,
		MaxIterations:   s.MaxIterations,
		MaxBracketSteps: s.MaxBracketSteps,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Assumptions: Assumptions{
			InflationRate:           1.03,
			CompoundingRate:         1.095,
			InterestCompoundingRate: 1.07,
			StartingContribution:    0,
			YearlyContribution:      10000,
			YearsOfContribution:     40,
			YearsTillRetirement:     40,
			YearsOfRetirement:       30,
			Multipliers:             0,
		},
		Solver: Solver{
			ToleranceDivisor: 1000,
			MaxIterations:    growth.DefaultMaxIterations,
			MaxBracketSteps:  growth.DefaultMaxBracketSteps,
		},
		Log: logging.Config{
			Level:  logging.LogLevelInfo,
			Format: logging.LogFormatConsole,
		},
	}
}

// Load resolves the configuration from defaults, the file at path (if not
// empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode config env: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
}

// Write encodes cfg to w as "toml" or "yaml".
func Write(w io.Writer, cfg *Config, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}
