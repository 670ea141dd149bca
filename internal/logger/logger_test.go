package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)
	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)
	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)
	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	FromContext(ctx).Info("scoped")

	assert.True(t, strings.Contains(buf.String(), `"request_id":"test-req-123"`))
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigPresets(t *testing.T) {
	def := DefaultConfig()
	assert.NotEmpty(t, def.ServiceName)
	assert.NotEmpty(t, def.Level)
	assert.NotEmpty(t, def.Format)

	prod := ProductionConfig()
	assert.True(t, prod.IsJSON())
	assert.Equal(t, slog.LevelInfo, prod.LogLevel())
	assert.Equal(t, "prod", prod.Environment)
	assert.False(t, prod.AddSource)

	dev := DevelopmentConfig()
	assert.False(t, dev.IsJSON())
	assert.Equal(t, slog.LevelDebug, dev.LogLevel())
	assert.True(t, dev.AddSource)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Config{Level: in}.LogLevel(), in)
	}
}
