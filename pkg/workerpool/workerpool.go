// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Range runs a worker pool over the inclusive [from, to] range of heights, invoking process for each.
// If process returns an error, the pool calls onCancel, cancels the context and stops further work.
func Range(
	ctx context.Context,
	workerCount int,
	from, to uint64,
	process func(context.Context, uint64) error,
	onCancel func(),
) error {
	return run(ctx, workerCount, func(ctx context.Context, tasks chan<- uint64) {
		if to < from {
			return
		}
		for h := from; ; h++ {
			select {
			case <-ctx.Done():
				return
			case tasks <- h:
			}
			if h == to {
				return
			}
		}
	}, process, onCancel)
}

func run[T any](
	ctx context.Context,
	workerCount int,
	feed func(context.Context, chan<- T),
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		firstErr error
		errOnce  sync.Once
	)
	tasks := make(chan T, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
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
			}
		}()
	}

	go func() {
		defer close(tasks)
		feed(ctx, tasks)
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
