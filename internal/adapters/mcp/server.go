// Package mcp exposes the project operations as Model Context Protocol
// tools over the streamable HTTP transport.
package mcp

import (
	"log/slog"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// ServerName identifies this server to MCP clients.
const ServerName = "pio-home"

const instructions = `Tools for embedded projects managed by the PlatformIO build tool.
Use list_projects to inspect existing projects, list_examples to browse the
examples of installed platforms, and init_project, import_arduino or
import_pio to create projects. Creation tools run the build tool and return
the project directory once it finishes.`

// NewServer creates an MCP server with the project tools registered.
func NewServer(projects ports.ProjectService, version string, logger *slog.Logger) *sdkmcp.Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: instructions,
		Logger:       logger,
	})

	registerTools(server, &tools{projects: projects, logger: logger})
	return server
}

// NewHandler serves server over the streamable HTTP transport. The server
// keeps no per-session state, so the handler runs stateless.
func NewHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{Stateless: true},
	)
}
