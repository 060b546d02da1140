package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/collatz_ive_go/effects/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogEffect_WritesEveryLevelBeforeTeardownReturns(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, endOfLog := log.WithZapEffectHandler(context.Background(), 4, zap.New(core))

	log.Effect(ctx, log.LogDebug, "debug", nil)
	log.Effect(ctx, log.LogInfo, "info", map[string]interface{}{"n": int64(27)})
	log.Effect(ctx, log.LogError, "error", nil)
	log.Effect(ctx, log.LogLevel("other"), "fallback", nil)
	endOfLog()

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, int64(27), entries[1].ContextMap()["n"])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[3].Level)
	assert.Equal(t, "fallback", entries[3].Message)
}

func TestLogEffect_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx, endOfLog := log.WithZapEffectHandler(context.Background(), 1, zap.New(core))

	log.Effect(ctx, log.LogDebug, "hidden", nil)
	log.Effect(ctx, log.LogError, "shown", nil)
	endOfLog()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestLogEffect_AfterTeardownIsDropped(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, endOfLog := log.WithZapEffectHandler(context.Background(), 1, zap.New(core))
	endOfLog()

	assert.NotPanics(t, func() {
		log.Effect(ctx, log.LogInfo, "late", nil)
	})
	assert.Equal(t, 0, logs.Len())
}

func TestLogEffect_PanicsWithoutHandler(t *testing.T) {
	assert.Panics(t, func() {
		log.Effect(context.Background(), log.LogInfo, "nowhere", nil)
	})
}

func TestLogEffect_FieldsAreWrittenInKeyOrder(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, endOfLog := log.WithZapEffectHandler(context.Background(), 1, zap.New(core))

	log.Effect(ctx, log.LogDebug, "sorted", map[string]interface{}{"c": 3, "a": 1, "b": 2})
	endOfLog()

	require.Equal(t, 1, logs.Len())
	var keys []string
	for _, f := range logs.All()[0].Context {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestWithTestEffectHandler_CopiesEntriesToExtraCores(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := log.WithTestEffectHandler(t, context.Background(), core)

	log.Effect(ctx, log.LogDebug, "visible in test output", map[string]interface{}{"n": int64(6)})

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 10*time.Millisecond)
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	assert.Equal(t, int64(6), entry.ContextMap()["n"])
}
