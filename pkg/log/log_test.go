package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezoic/ztensor/pkg/log"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"off", log.Disabled},
		{"nonsense", log.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log.ToLogLevel(tt.in), tt.in)
	}
}

func TestZerologProvider_Fields(t *testing.T) {
	var buf bytes.Buffer
	p := log.NewZerologProviderWithWriter(&buf, log.DebugLevel)

	logger := p.GetLoggerWithName("dense").With(log.ComponentKey, "dense")
	logger.Info("Materialization completed",
		log.OperationKey, log.OperationMaterialize,
		log.ElementsKey, 20,
	)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "Materialization completed", entries[0]["message"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "dense", entries[0]["logger"])
	assert.Equal(t, "dense", entries[0][log.ComponentKey])
	assert.Equal(t, log.OperationMaterialize, entries[0][log.OperationKey])
	assert.EqualValues(t, 20, entries[0][log.ElementsKey])
}

func TestZerologProvider_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	p := log.NewZerologProviderWithWriter(&buf, log.WarnLevel)
	logger := p.GetLogger()

	assert.False(t, logger.Enabled(log.DebugLevel))
	assert.False(t, logger.Enabled(log.InfoLevel))
	assert.True(t, logger.Enabled(log.WarnLevel))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too", log.ErrorKey, errors.New("boom"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[1][log.ErrorKey])

	buf.Reset()
	p.SetLevel(log.DebugLevel)
	p.GetLogger().Debug("now visible")
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestZerologProvider_OddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	p := log.NewZerologProviderWithWriter(&buf, log.InfoLevel)
	p.GetLogger().Info("odd", "dangling")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "dangling", entries[0]["!BADKEY"])
}

func TestGlobalProvider(t *testing.T) {
	var buf bytes.Buffer
	log.SetLoggerProvider(log.NewZerologProviderWithWriter(&buf, log.InfoLevel))
	defer log.SetLoggerProvider(log.NewZerologProvider(log.InfoLevel))

	log.GetLoggerWithName("render").Debug("hidden")
	log.SetupLogger("debug")
	log.GetLoggerWithName("render").Debug("visible")
	log.LogError(errors.New("failure"), "Operation failed", log.PathKey, "out.png")
	log.LogError(nil, "ignored")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "visible", entries[0]["message"])
	assert.Equal(t, "failure", entries[1][log.ErrorKey])
	assert.Equal(t, "out.png", entries[1][log.PathKey])
}
