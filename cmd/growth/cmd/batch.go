package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/meenmo/growthrate/growth"
)

type solveInput struct {
	TaskID         string  `json:"task_id,omitempty"`
	BeginningValue float64 `json:"beginning_value"`
	EndingValue    float64 `json:"ending_value"`
	Contribution   float64 `json:"contribution"`
	Periods        int     `json:"periods"`
	// Tolerance overrides the configured |ending| / tolerance_divisor when
	// non-zero.
	Tolerance float64 `json:"tolerance,omitempty"`
}

func (in solveInput) growthInput() growth.Input {
	return growth.Input{
		BeginningValue: in.BeginningValue,
		EndingValue:    in.EndingValue,
		Contribution:   in.Contribution,
		Periods:        in.Periods,
	}
}

func (a *app) newBatchCmd() *cobra.Command {
	var (
		inputPath string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve growth rates for a JSON object or array of inputs",
		Long: `Reads a JSON object or array of objects with beginning_value, ending_value,
contribution, periods and optional task_id / tolerance, and prints one JSON
result per input in the same shape. Inputs that fail carry an "error" field
and make the command exit non-zero.`,
		Example: `  echo '[{"beginning_value":1000,"ending_value":2000,"periods":10}]' | growth batch`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := strings.TrimSpace(inputPath)
			raw, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			inputs, isArray, err := parseInputs(raw)
			if err != nil {
				return fmt.Errorf("parse JSON: %w", err)
			}

			outputs, failed := a.solveAll(inputs, workers)

			w := cmd.OutOrStdout()
			if isArray {
				err = writeJSON(w, outputs)
			} else {
				err = writeJSON(w, outputs[0])
			}
			if err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON input path (reads stdin if omitted)")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of concurrent solves")
	return cmd
}

// solveAll solves every input on a bounded worker pool. Outputs keep the
// input order.
func (a *app) solveAll(inputs []solveInput, workers int) ([]solveOutput, int) {
	if workers < 1 {
		workers = 1
	}

	pool := pond.NewPool(workers)
	outputs := make([]solveOutput, len(inputs))
	var failed atomic.Int32

	for i, in := range inputs {
		i, in := i, in
		if in.TaskID == "" {
			in.TaskID = uuid.NewString()
		}
		pool.Submit(func() {
			out, err := a.solveOne(in)
			if err != nil {
				failed.Add(1)
				a.logger.Warn().Err(err).Str("task_id", in.TaskID).Msg("Solve failed")
				outputs[i] = solveOutput{TaskID: in.TaskID, Error: err.Error()}
				return
			}
			outputs[i] = out
		})
	}
	pool.StopAndWait()

	a.logger.Info().
		Int("inputs", len(inputs)).
		Int32("failed", failed.Load()).
		Int("workers", workers).
		Msg("Batch finished")

	return outputs, int(failed.Load())
}

func (a *app) solveOne(in solveInput) (solveOutput, error) {
	opts := a.solverOptions(in.EndingValue)
	if in.Tolerance != 0 {
		opts.Tolerance = in.Tolerance
	}
	res, err := growth.Solve(in.growthInput(), opts)
	if err != nil {
		return solveOutput{}, describeSolveError(err)
	}
	return newSolveOutput(in.TaskID, res, a.cfg.Assumptions.InflationRate), nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func parseInputs(raw []byte) ([]solveInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []solveInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input solveInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []solveInput{input}, false, nil
}
