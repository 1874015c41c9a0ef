// Package async provides a single-assignment pending result for work that
// completes in the background, plus chaining of continuations onto it.
//
// A Pending resolves exactly once, to a value or an error. Continuations
// attached with Then run only after the source succeeds; a failure skips
// them and propagates unchanged to whoever waits on the chained result.
package async

import (
	"context"
	"fmt"
	"sync"
)

// Pending is an in-flight result of type T.
type Pending[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

func (p *Pending[T]) resolve(val T, err error) {
	p.once.Do(func() {
		p.val = val
		p.err = err
		close(p.done)
	})
}

// Go runs fn in a new goroutine and returns a Pending for its result.
// A panic in fn resolves the Pending with an error instead of crashing
// the process.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	p := newPending[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				p.resolve(zero, fmt.Errorf("async: panic: %v", r))
			}
		}()
		val, err := fn(ctx)
		p.resolve(val, err)
	}()
	return p
}

// Resolved returns a Pending that has already succeeded with val.
func Resolved[T any](val T) *Pending[T] {
	p := newPending[T]()
	p.resolve(val, nil)
	return p
}

// Failed returns a Pending that has already failed with err.
func Failed[T any](err error) *Pending[T] {
	p := newPending[T]()
	var zero T
	p.resolve(zero, err)
	return p
}

// Then chains fn onto p. fn receives p's value once p succeeds; if p fails,
// fn is never called and the returned Pending fails with the same error.
//
// The continuation follows p to completion even when nobody is waiting on
// the result any more. ctx is only handed to fn.
func Then[T, U any](ctx context.Context, p *Pending[T], fn func(context.Context, T) (U, error)) *Pending[U] {
	return Go(ctx, func(ctx context.Context) (U, error) {
		<-p.done
		if p.err != nil {
			var zero U
			return zero, p.err
		}
		return fn(ctx, p.val)
	})
}

// Done returns a channel that is closed once p has resolved.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until p resolves or ctx is done. Giving up on the wait does
// not cancel the underlying work.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
