package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
)

// Timeout returns middleware that bounds each request to d. The handler
// runs on its own goroutine with a context carrying the deadline; its
// response is buffered and released only if it finishes in time. Otherwise
// the client gets a 504, as a JSON-RPC error for JSON POSTs and a problem
// document for everything else, and later handler writes fail with
// http.ErrHandlerTimeout.
//
// A non-positive d disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			dw := &deferredWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(dw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Re-raise on the serving goroutine so Recovery sees it.
				panic(v)
			case <-done:
				dw.release(w)
			case <-ctx.Done():
				dw.expire()
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				writeFailure(w, r, http.StatusGatewayTimeout, context.DeadlineExceeded)
			}
		})
	}
}

// deferredWriter holds a handler's response until the Timeout middleware
// decides whether to release it.
type deferredWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (dw *deferredWriter) Header() http.Header {
	return dw.header
}

func (dw *deferredWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.status == 0 && !dw.expired {
		dw.status = code
	}
}

func (dw *deferredWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	return dw.body.Write(b)
}

func (dw *deferredWriter) expire() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.expired = true
}

// release copies the buffered response to w. The handler has returned, so
// the header map is no longer shared.
func (dw *deferredWriter) release(w http.ResponseWriter) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	maps.Copy(w.Header(), dw.header)
	if dw.status != 0 {
		w.WriteHeader(dw.status)
	}
	_, _ = w.Write(dw.body.Bytes())
}
