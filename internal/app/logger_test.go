package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json at warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger("warn", LogFormatJSON, &buf)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "batch", "latest")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "latest", entry["batch"])
	})

	t.Run("defaults", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger("", "", &buf)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	for _, tc := range []struct{ level, format string }{
		{"loud", LogFormatText},
		{"info", "xml"},
	} {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			_, err := newLogger(tc.level, tc.format, &bytes.Buffer{})
			require.Error(t, err)
		})
	}
}

func TestNewApp_PanicsOnBadLogger(t *testing.T) {
	cfg := &Config{Profile: "forum", LogLevel: "loud"}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r, `invalid logger configuration: invalid log level "loud"`)
	}()
	NewApp(&bytes.Buffer{}, cfg, nil)
}
