// Package fanout maps a function over a slice on a fixed pool of workers.
// Results keep input order and one item failing, or panicking, never
// affects the others. Project aggregation uses it to read configurations in
// parallel.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item on at most workers goroutines (minimum one)
// and blocks until all of them finish. Once ctx is done, items not yet
// handed to a worker are not started and report ctx.Err(); items already
// running are expected to watch ctx themselves.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for range min(max(workers, 1), len(items)) {
		wg.Go(func() {
			for i := range next {
				results[i] = call(ctx, items[i], fn)
			}
		})
	}

feed:
	for i := range items {
		select {
		case next <- i:
		case <-ctx.Done():
			for j := i; j < len(items); j++ {
				results[j].Err = ctx.Err()
			}
			break feed
		}
	}
	close(next)

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", p)}
		}
	}()
	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}

// Collect keeps the successful values in input order. onErr, when set,
// sees the index and error of each failure.
func Collect[R any](results []Result[R], onErr func(idx int, err error)) []R {
	out := make([]R, 0, len(results))
	for i, r := range results {
		switch {
		case r.Err == nil:
			out = append(out, r.Value)
		case onErr != nil:
			onErr(i, r.Err)
		}
	}
	return out
}
