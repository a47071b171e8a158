package cmd

import (
	"encoding/json"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/meenmo/growthrate/growth"
)

type solveOutput struct {
	TaskID          string  `json:"task_id,omitempty"`
	Rate            float64 `json:"rate"`
	RatePercent     float64 `json:"rate_percent"`
	RealRatePercent float64 `json:"real_rate_percent"`
	BracketLow      float64 `json:"bracket_low"`
	BracketHigh     float64 `json:"bracket_high"`
	BracketSteps    int     `json:"bracket_steps"`
	Iterations      int     `json:"iterations"`
	Error           string  `json:"error,omitempty"`
}

func newSolveOutput(taskID string, res growth.Result, inflationRate float64) solveOutput {
	return solveOutput{
		TaskID:          taskID,
		Rate:            res.Rate,
		RatePercent:     res.Percent(),
		RealRatePercent: res.RealPercent(inflationRate),
		BracketLow:      res.Bracket.Low,
		BracketHigh:     res.Bracket.High,
		BracketSteps:    res.BracketSteps,
		Iterations:      res.Iterations,
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// money renders an amount as "$1,234,567.89".
func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// amount renders a plain amount with thousands separators and no decimals.
func amount(v float64) string {
	return humanize.FormatFloat("#,###.", v)
}
