// Package dto provides the JSON-RPC 2.0 envelope, method params and result
// objects exchanged with the GUI, plus RFC 9457 Problem Details responses
// for transport-level failures.
package dto

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jsamuelsen11/pio-home/internal/domain"
)

// Version is the only JSON-RPC protocol version accepted.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// RPCRequest is a single JSON-RPC call. A request without an id is a
// notification and gets no response.
type RPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// IsNotification reports whether the request carries no id.
func (r *RPCRequest) IsNotification() bool {
	return r.ID == nil
}

// Validate checks the envelope fields.
func (r *RPCRequest) Validate() error {
	if r.JSONRPC != Version || r.Method == "" {
		return errInvalidRequest
	}
	return nil
}

var errInvalidRequest = errors.New("invalid request")

// RPCResponse is the reply to a call. Exactly one of Result and Error is set.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// RPCError is the error member of a response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// NewResult wraps a successful result.
func NewResult(id json.RawMessage, result any) RPCResponse {
	return RPCResponse{JSONRPC: Version, Result: result, ID: id}
}

// NewErrorReply wraps a failure, translating err with NewRPCError.
func NewErrorReply(id json.RawMessage, err error) RPCResponse {
	return RPCResponse{JSONRPC: Version, Error: NewRPCError(err), ID: id}
}

// NewRPCError maps an error to its wire form. Project kind and build tool
// failures keep their application codes; validation failures become
// invalid params; anything unrecognized is reported as an internal error
// without its details.
func NewRPCError(err error) *RPCError {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		return &RPCError{
			Code:    cmdErr.Code(),
			Message: cmdErr.Error(),
			Data: map[string]any{
				"args":      cmdErr.Args,
				"exit_code": cmdErr.ExitCode,
				"stderr":    cmdErr.Stderr,
			},
		}
	}

	var kindErr *domain.ProjectKindError
	if errors.As(err, &kindErr) {
		return &RPCError{Code: kindErr.Code(), Message: kindErr.Error()}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return &RPCError{Code: CodeInvalidParams, Message: err.Error(), Data: validationFieldsToDetails(verr.Fields)}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return &RPCError{Code: CodeInvalidParams, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &RPCError{Code: CodeInternalError, Message: "request ended before the operation completed: " + err.Error()}
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrNotFound):
		return &RPCError{Code: CodeInternalError, Message: err.Error()}
	default:
		return &RPCError{Code: CodeInternalError, Message: "Internal error"}
	}
}

// Protocol-level errors.
var (
	ErrParse          = &RPCError{Code: CodeParseError, Message: "Parse error"}
	ErrInvalidRequest = &RPCError{Code: CodeInvalidRequest, Message: "Invalid Request"}
)

// MethodNotFound returns the error for an unregistered method.
func MethodNotFound(method string) *RPCError {
	return &RPCError{Code: CodeMethodNotFound, Message: "Method not found: " + method}
}

// InvalidParams returns the error for params that cannot be decoded.
func InvalidParams(err error) *RPCError {
	return &RPCError{Code: CodeInvalidParams, Message: "Invalid params: " + err.Error()}
}
