package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
)

// maxJSONBodyBytes caps a JSON-RPC request body, batches included.
const maxJSONBodyBytes = 1 << 20

// writeJSON sends v with status. Encoding failures can only be logged; the
// status line is already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response body",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}
