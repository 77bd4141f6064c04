package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{LogLevel: "info", MemoSize: 128}, s)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EFFECTDEMO_LOG_LEVEL", "debug")
	t.Setenv("EFFECTDEMO_DEV_LOG", "true")
	t.Setenv("EFFECTDEMO_MEMO_SIZE", "0")
	t.Setenv("EFFECTDEMO_TRACE", "true")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{LogLevel: "debug", DevLog: true, MemoSize: 0, Trace: true}, s)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("EFFECTDEMO_MEMO_SIZE", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	assert.Error(t, Settings{LogLevel: "info", MemoSize: -1}.Validate())
	assert.Error(t, Settings{LogLevel: "loud"}.Validate())
	assert.NoError(t, Settings{LogLevel: "warn"}.Validate())
}

func TestLogger(t *testing.T) {
	logger, err := Settings{LogLevel: "warn"}.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = Settings{LogLevel: "nope"}.Logger()
	assert.Error(t, err)
}
