// Package fanout runs a function over a slice of items on a bounded pool of
// worker goroutines, returning results in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for the item at Index.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines.
// Values of maxWorkers below 1 are treated as 1.
//
// Items not yet started when ctx is canceled record ctx.Err() without
// calling fn. Items already running finish; fn should watch ctx itself if
// it can block.
//
// Run blocks until every item has a result. An empty input yields an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Index: idx, Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Index: idx, Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}
