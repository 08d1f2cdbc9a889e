// Package logging builds the planner's structured logger. Every component
// takes a *zap.SugaredLogger rather than reaching for a package-level
// global, matching the "no hidden singletons" design note in spec.md
// section 9 (global mutable planner state).
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a SugaredLogger whose level is driven by the config's
// LOG_LEVEL_HASTAR string ("debug", "info", "warn", "error"; defaults to
// "info" on an unrecognized value).
func New(levelName string) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(strings.ToLower(levelName))); err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"

	logger, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than panicking out of a
		// planner constructor over a logging misconfiguration.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
