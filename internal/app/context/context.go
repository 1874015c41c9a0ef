// Package appctx memoizes lookups for the lifetime of one request.
//
// Middleware (or an MCP tool call) installs a RequestContext; services ask
// it for values by key and each key is fetched at most once per request:
//
//	rc := appctx.ForRequest(ctx)
//	name, err := appctx.GetOrFetch(rc, "board:uno", fetchBoardName)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch means one key was used with two different value types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// errAbandoned is what waiters see when the fetch for their key panicked.
var errAbandoned = errors.New("appctx: fetch did not complete")

type ctxKey struct{}

// RequestContext is a per-request memo. It embeds the request context, which
// is what fetch functions receive.
type RequestContext struct {
	context.Context

	mu      sync.Mutex
	entries map[string]*entry
}

// entry is filled exactly once; done closes when value and err are final.
// Errors are memoized like values.
type entry struct {
	done  chan struct{}
	value any
	err   error
}

// New returns an empty RequestContext bound to ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, entries: map[string]*entry{}}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// ForRequest returns the installed RequestContext, or a fresh one bound to
// ctx so callers outside a request still work, just without sharing.
func ForRequest(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// Len reports how many keys have been requested so far.
func (rc *RequestContext) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// GetOrFetch returns the memoized result for key, calling fetch on first use.
// Concurrent callers asking for the same cold key wait for the single fetch
// in flight.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	e, ok := rc.entries[key]
	if !ok {
		e = &entry{done: make(chan struct{})}
		rc.entries[key] = e
	}
	rc.mu.Unlock()

	if !ok {
		e.fill(rc.Context, func(ctx context.Context) (any, error) { return fetch(ctx) })
	}
	<-e.done

	var zero T
	if e.err != nil {
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, e.value, zero)
	}
	return v, nil
}

func (e *entry) fill(ctx context.Context, fetch func(context.Context) (any, error)) {
	defer close(e.done)
	e.err = errAbandoned
	e.value, e.err = fetch(ctx)
}
