// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/board,
// domain/command, domain/example, domain/state). This root package holds
// sentinel errors and the error types that carry RPC codes.
package domain
