package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/growthrate/logging"
)

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.Config{Level: logging.LogLevelInfo, Format: logging.LogFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Float64("rate", 1.07).Msg("solved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "solved", entry["message"])
	assert.Equal(t, 1.07, entry["rate"])
}

func TestNewLogger_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.Config{Level: logging.LogLevelDebug, Format: logging.LogFormatConsole}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("bracket found")
	assert.Contains(t, buf.String(), "bracket found")
}

func TestNewLogger_Invalid(t *testing.T) {
	t.Parallel()

	_, err := logging.NewLogger(&logging.Config{Level: "loud", Format: logging.LogFormatJSON}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logging.NewLogger(&logging.Config{Level: logging.LogLevelInfo, Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
