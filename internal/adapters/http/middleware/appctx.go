package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/pio-home/internal/app/context"
)

// AppContext gives each request a fresh appctx.RequestContext, so board
// names and the application state are looked up at most once per request.
// It must follow CorrelationID; fetches then run with the request IDs in
// their context.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(ctx, appctx.New(ctx))))
		})
	}
}
