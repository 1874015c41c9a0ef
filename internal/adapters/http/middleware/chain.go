package middleware

import "net/http"

// Chain folds middlewares into one, outermost first, so the server pipeline
// reads in request order:
//
//	Chain(Recovery(logger), RequestID(), Logging(logger))(h)
//	// == Recovery(logger)(RequestID()(Logging(logger)(h)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
