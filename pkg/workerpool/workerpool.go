// Package workerpool fans work items out to a bounded set of workers.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process over every item with workerCount goroutines. The
// first error cancels outstanding work and is returned; onCancel, when
// non-nil, fires before that cancellation.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	work := make(chan T)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				if ctx.Err() != nil {
					return
				}
				if err := process(ctx, item); err != nil {
					errOnce.Do(func() {
						firstErr = err
						if onCancel != nil {
							onCancel()
						}
						cancel()
					})
					return
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case work <- item:
		}
	}
	close(work)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
