package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/humanpath/internal/config"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer.
type syncBuffer struct {
	bytes.Buffer
}

func (s *syncBuffer) Sync() error { return nil }

func testLoggerConfig(format string) config.LoggerConfig {
	return config.LoggerConfig{
		Level:       "debug",
		Format:      format,
		ServiceName: "humanpath-test",
	}
}

func TestInitializeConsoleOutput(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(testLoggerConfig("console"), &buf)

	GetLogger().Info("trajectory built", zap.Int("points", 42))

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "trajectory built")
	assert.Contains(t, out, "humanpath-test")
}

func TestInitializeJSONOutput(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	Initialize(testLoggerConfig("json"), &buf)

	GetLogger().Warn("boundary clamped")

	out := buf.String()
	assert.Contains(t, out, `"msg":"boundary clamped"`)
	assert.Contains(t, out, `"WARN"`)
}

func TestInitializeRunsOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second syncBuffer
	Initialize(testLoggerConfig("json"), &first)
	Initialize(testLoggerConfig("json"), &second)

	GetLogger().Info("only the first writer wins")
	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestGetLoggerFallback(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Debug("fallback works") })
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf syncBuffer
	cfg := testLoggerConfig("json")
	cfg.Level = "not-a-level"
	Initialize(cfg, &buf)

	GetLogger().Debug("should be filtered")
	GetLogger().Info("should pass")

	out := buf.String()
	assert.NotContains(t, out, "should be filtered")
	assert.Contains(t, out, "should pass")
}

var _ zapcore.WriteSyncer = (*syncBuffer)(nil)
