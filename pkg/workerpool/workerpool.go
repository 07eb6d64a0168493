// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Gather runs process over the provided work items with at most workerCount
// workers and returns one result slot per item, in item order. A failing
// item records its error without stopping the others; only context
// cancellation abandons remaining work, and abandoned items report the
// context error.
func Gather[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) []error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	results := make([]error, len(items))
	indexes := make(chan int)

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					results[idx] = err
					continue
				}
				results[idx] = process(ctx, items[idx])
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)

	wg.Wait()
	return results
}
