package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRecognizesLevels(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		log := New(name)
		require.NotNil(t, log)
		require.True(t, log.Desugar().Core().Enabled(want), "level %q must enable %v", name, want)
	}
}

func TestNewFallsBackToInfoOnUnrecognizedLevel(t *testing.T) {
	log := New("not-a-real-level")
	require.NotNil(t, log)
	require.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
}
