package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/collatz_ive_go/effects/internal/model"
)

// --- common interface ---

type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Drain closes the input channels and blocks until every message that was
	// already queued has been handled.
	Drain()
}

func runWorker[T any](ctx context.Context, ch <-chan T, handleFn func(context.Context, T)) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			handleFn(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	done     chan struct{}
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Drain() {
	close(q.effectCh)
	<-q.done
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	done := make(chan struct{})
	ready := make(chan struct{})

	go func(ch chan T) {
		defer close(done)
		close(ready)
		runWorker(ctx, ch, handleFn)
	}(effCh)

	<-ready

	return singleQueue[T]{effectCh: effCh, done: done}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	done      *sync.WaitGroup
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func (pq partitionedQueue[T]) Drain() {
	for _, ch := range pq.effectChs {
		close(ch)
	}
	pq.done.Wait()
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	done := &sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		done.Add(1)
		ch := make(chan T, bufferSize)
		go func(ch chan T) {
			defer done.Done()
			ready.Done()
			runWorker(ctx, ch, handleFn)
		}(ch)
		channels[i] = ch
	}
	ready.Wait()
	return partitionedQueue[T]{effectChs: channels, done: done}
}
