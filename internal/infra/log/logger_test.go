package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"addressbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "verbose", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestNewWithWriter_JSONCarriesServiceAttributes(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "addressbook"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("address book loaded", slog.Int("size", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "address book loaded", record["msg"])
	assert.Equal(t, "addressbook", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.InDelta(t, 3, record["size"], 0)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	scoped := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, FromContext(t.Context(), fallback))
	assert.Same(t, scoped, FromContext(WithContext(t.Context(), scoped), fallback))
}
