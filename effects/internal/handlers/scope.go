package handlers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	effectmodel "github.com/on-the-ground/collatz_ive_go/effects/internal/model"
)

// IMPORTANT:
// A scope is owned by the goroutine that registered it. Close must not race
// with effects being sent to the same scope.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closed     bool
}

// Close drains queued messages and then runs the teardown. Calling it twice is a no-op.
func (es *effectScope[T]) Close() {
	if !es.closed {
		es.closed = true
		es.dispatcher.Drain()
		es.closeFn()
	}
}

// send enqueues msg on the worker channel picked by the dispatcher.
func (es *effectScope[T]) send(ctx context.Context, msg T) (err error) {
	if es.closed {
		return fmt.Errorf("%w: %s", effectmodel.ErrClosedScope, es.EffectId)
	}
	defer func() {
		// the channel was closed under us
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s", effectmodel.ErrClosedScope, es.EffectId)
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return nil
	}
}

func newEffectScope[T any](
	dispatcher WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		closeFn:    teardown,
		closed:     false,
	}
}
