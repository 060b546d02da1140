// Package effects carries the side effects of a collatz run on the context.
//
// Logging and configuration lookups are not called directly by the
// computation. They are delegated to handlers that the entry point registers
// on a context.Context with `WithXxxEffectHandler(ctx)` and ends with the
// returned teardown function. Code below the entry point performs effects
// through `FireAndForgetEffect` (log) and `PerformResumableEffect` (binding).
//
// Handlers live in sub-packages:
//   - log: structured logging through zap
//   - binding: key/value configuration, delegating to enclosing scopes
//
// A handler scope is owned by the goroutine that registered it. Ending the
// scope handles every payload already queued, then runs its teardown.
//
// Example:
//
//	func run(ctx context.Context, logger *zap.Logger) {
//	    ctx, endOfLog := log.WithZapEffectHandler(ctx, 16, logger)
//	    defer endOfLog()
//
//	    log.Effect(ctx, log.LogInfo, "started", nil)
//	}
package effects
