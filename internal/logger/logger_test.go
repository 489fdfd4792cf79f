package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", "JSON", &buf)
	t.Cleanup(func() { Configure("info", "text", &bytes.Buffer{}) })

	Log.WithField("seed", 42).Debug("cave generated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cave generated", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 42, entry["seed"])
}

func TestConfigureLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	Configure("not-a-level", "", &buf)
	t.Cleanup(func() { Configure("info", "text", &bytes.Buffer{}) })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	Log.Debug("hidden")
	assert.Empty(t, buf.String())

	Log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
