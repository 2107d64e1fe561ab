package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"estate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "estate"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int("index", 3))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"service":"estate"`)
	assert.Contains(t, out, `"index":3`)
}

func TestNewWithWriter_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewWithWriter_BadLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
