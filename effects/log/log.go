package log

import (
	"context"
	"maps"
	"slices"

	"github.com/on-the-ground/collatz_ive_go/effects"
	effectmodel "github.com/on-the-ground/collatz_ive_go/effects/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the severity of a log message.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogError LogLevel = "error"
)

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LogPayload is one log message carried by the log effect.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// WithZapEffectHandler registers a fire-and-forget log effect handler backed by logger.
// Messages below the logger's level are dropped before their fields are encoded.
// The teardown writes out every queued message and syncs the logger; use the
// context it returns afterwards.
func WithZapEffectHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	return effects.WithFireAndForgetEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectLog,
		func(_ context.Context, payload LogPayload) {
			ce := logger.Check(payload.Level.zapLevel(), payload.Message)
			if ce == nil {
				return
			}
			fields := make([]zap.Field, 0, len(payload.Fields))
			for _, k := range slices.Sorted(maps.Keys(payload.Fields)) {
				fields = append(fields, zap.Any(k, payload.Fields[k]))
			}
			ce.Write(fields...)
		},
		func() {
			// stderr/stdout sync returns EINVAL on some platforms
			_ = logger.Sync()
		},
	)
}

// Effect emits msg through the log handler registered on ctx.
// Messages sent after the handler is torn down are dropped.
func Effect(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	_ = effects.FireAndForgetEffect(ctx, effectmodel.EffectLog, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}
