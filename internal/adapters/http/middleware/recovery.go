package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/dto"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The actual panic value and stack trace are logged but never
// exposed in the HTTP response.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the error with the full stack trace
// and answers with a 500. JSON POST bodies (the JSON-RPC and MCP surfaces) get
// a JSON-RPC internal error envelope with a null id; every other request gets
// an RFC 9457 problem document. If the response headers have already been
// written, only the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if rw.wroteHeader {
					return
				}
				writeFailure(rw, r, http.StatusInternalServerError, errInternalServer)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// writeFailure answers a request the handler could not complete. JSON POST
// bodies get a JSON-RPC error envelope with a null id; everything else gets
// a problem document.
func writeFailure(w http.ResponseWriter, r *http.Request, status int, err error) {
	if !isJSONPost(r) {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.NewErrorReply(nil, err))
}

func isJSONPost(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
