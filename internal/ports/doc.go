// Package ports holds the interfaces the home server is assembled from.
//
// services.go lists what the JSON-RPC and MCP adapters call: project
// listing, creation, import, examples and persisted UI state. clients.go
// lists what the application layer calls out to: the build tool, project
// configuration files, installed platforms, board registries and state
// storage. health.go lets any of those report readiness.
package ports
