package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerInstallsGlobal(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	l, err := NewLogger("debug", false)
	require.NoError(t, err)
	assert.Same(t, l, Log)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger("nonsense", true)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}
