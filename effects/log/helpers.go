package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// WithTestEffectHandler registers a debug-level log effect whose output goes
// to t's log. Entries are also written to every core in extra, so tests can
// pass an observer core and assert on what was logged.
// The handler is torn down in t.Cleanup, after buffered entries are written.
func WithTestEffectHandler(t testing.TB, ctx context.Context, extra ...zapcore.Core) context.Context {
	t.Helper()
	logger := zaptest.NewLogger(t,
		zaptest.Level(zapcore.DebugLevel),
		zaptest.WrapOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(append([]zapcore.Core{core}, extra...)...)
		})),
	)
	ctx, teardown := WithZapEffectHandler(ctx, 8, logger)
	t.Cleanup(func() { teardown() })
	return ctx
}
