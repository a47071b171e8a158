package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/growthrate/growth"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRate_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "rate", "1000", "2000", "0", "10", "--json", "--inflation", "3%")
	require.NoError(t, err)

	var got solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1.0718, got.Rate, 5e-4)
	assert.InDelta(t, 7.18, got.RatePercent, 0.05)
	assert.InDelta(t, got.RatePercent-3, got.RealRatePercent, 1e-9)
	assert.Equal(t, 1.05, got.BracketLow)
	assert.Positive(t, got.Iterations)
}

func TestRate_Text(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "rate", "0", "40,000", "$10,000", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Money grew at an approximate growth rate of: 1.000")
	assert.Contains(t, out, "(0.0")
	assert.Contains(t, out, "Assuming an inflation rate of 3.00%")
}

func TestRate_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "rate", "1000", "500", "0", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, growth.ErrMoneyShrank)
	assert.Contains(t, err.Error(), "money shrank")

	_, _, err = run(t, "", "rate", "1000", "2000", "0", "0")
	assert.ErrorIs(t, err, growth.ErrDegenerateInput)

	_, _, err = run(t, "", "rate", "1000", "lots", "0", "5")
	assert.ErrorContains(t, err, "invalid ending value")

	_, _, err = run(t, "", "rate", "1000", "2000", "0", "ten")
	assert.ErrorContains(t, err, "invalid number of periods")

	_, _, err = run(t, "", "rate", "1000", "2000", "0", "10", "--tolerance", "2", "--inflation", "x%")
	assert.Error(t, err)
}

func TestRate_NegativeToleranceIsRejected(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "rate", "1000", "2000", "0", "10", "--tolerance", "-5")
	assert.ErrorIs(t, err, growth.ErrDegenerateInput)

	_, _, err = run(t, "", "rate", "1000", "2000", "0", "10", "--tolerance", "0")
	assert.NoError(t, err, "zero tolerance falls back to the default")
}

func TestRate_VerboseTracesSteps(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "", "rate", "1000", "2000", "0", "10", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Evaluated rate")
	assert.Contains(t, stderr, "Growth rate solved")
}

func TestBatch_Array(t *testing.T) {
	t.Parallel()

	stdin := `[
		{"task_id": "double", "beginning_value": 1000, "ending_value": 2000, "periods": 10},
		{"beginning_value": 0, "ending_value": 40000, "contribution": 10000, "periods": 4, "tolerance": 40},
		{"task_id": "shrank", "beginning_value": 1000, "ending_value": 500, "periods": 5}
	]`
	out, _, err := run(t, stdin, "batch", "--workers", "2")
	require.ErrorContains(t, err, "1 of 3 inputs failed")

	var got []solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "double", got[0].TaskID)
	assert.InDelta(t, 1.0718, got[0].Rate, 5e-4)
	assert.Empty(t, got[0].Error)

	_, uuidErr := uuid.Parse(got[1].TaskID)
	assert.NoError(t, uuidErr)
	assert.InDelta(t, 1.0, got[1].Rate, 1e-3)

	assert.Equal(t, "shrank", got[2].TaskID)
	assert.Contains(t, got[2].Error, "money shrank")
	assert.Zero(t, got[2].Rate)
}

func TestBatch_Object(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, `{"task_id":"one","beginning_value":1000,"ending_value":2000,"periods":10}`, "batch")
	require.NoError(t, err)

	var got solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "one", got.TaskID)
}

func TestBatch_NegativeToleranceIsRejected(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, `[{"task_id":"neg","beginning_value":1000,"ending_value":2000,"periods":10,"tolerance":-1}]`, "batch")
	require.ErrorContains(t, err, "1 of 1 inputs failed")

	var got []solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error, "undefined for these inputs")
}

func TestParseInputs_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "[]", "{not json"} {
		_, _, err := parseInputs([]byte(raw))
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestCalculators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"cagr", "1000", "2000", "10"}, "grown at a rate of 7.18% per period"},
		{[]string{"periods", "1000", "2000", "7%"}, "It takes 10.24 periods"},
		{[]string{"net", "1.07", "10"}, "Increased 1.967 times"},
		{[]string{"interest", "-o", "8%", "-i", "3%", "-m", "3"}, "Your money will multiply by:"},
		{[]string{"retirement", "-r", "30", "-c", "10000", "-n", "40"}, "You will put in a total of $400,000.00"},
		{[]string{"retirement", "-r", "30"}, "is 3.810%"},
		{[]string{"retirement", "-w", "4%"}, "Withdrawing 4.000% of your funds each year"},
		{[]string{"retirement", "--withdraw-rate", "0.05"}, "Withdrawing 5.000% of your funds each year"},
		{[]string{"interest"}, "A compounding rate of 1.07 (7.00%)"},
		{[]string{"interest", "-r", "20"}, "20 years till retirement"},
		{[]string{"retirement"}, "A compounding rate of 1.095 (9.50%)"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			t.Parallel()

			out, _, err := run(t, "", tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}

	_, _, err := run(t, "", "cagr", "0", "0", "5")
	assert.Error(t, err)

	_, _, err = run(t, "", "retirement", "-w", "150%")
	assert.ErrorContains(t, err, "withdraw rate must be between")

	_, _, err = run(t, "", "interest", "-w", "4%")
	assert.Error(t, err, "interest has no withdraw rate")
}

func TestConfig_PrintsEffectiveValues(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "tolerance_divisor: 1000")
	assert.Contains(t, out, "inflation_rate: 1.03")
}
