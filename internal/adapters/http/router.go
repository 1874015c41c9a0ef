// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pio-home/internal/adapters/http/handlers"
)

// RPCPath is the endpoint of the JSON-RPC surface.
const RPCPath = "/jsonrpc"

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. mcp is mounted at
// mcpPath when non-nil.
func NewRouter(
	rpcHandler *handlers.RPCHandler,
	healthHandler *handlers.HealthHandler,
	mcp http.Handler,
	mcpPath string,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.ErrMethodNotAllowed)
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Method(http.MethodPost, RPCPath, rpcHandler)

	// Streamable MCP transport uses GET, POST and DELETE on one path.
	if mcp != nil {
		r.Handle(mcpPath, mcp)
	}

	return r
}
