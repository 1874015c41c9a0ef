// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// RPC method names.
const (
	MethodGetProjects   = "project.get_projects"
	MethodInit          = "project.init"
	MethodImportArduino = "project.import_arduino"
	MethodImportPIO     = "project.import_pio"
	MethodGetExamples   = "project.get_project_examples"
	MethodGetState      = "app.get_state"
	MethodSaveState     = "app.save_state"
)

// rpcMethod executes one call. Errors are translated by dto.NewRPCError.
type rpcMethod func(ctx context.Context, params json.RawMessage) (any, error)

// RPCHandler serves JSON-RPC 2.0 over POST /jsonrpc. Calls that start the
// build tool wait for it to finish before replying; the command itself is
// not bound to the request lifetime.
type RPCHandler struct {
	projects ports.ProjectService
	state    ports.StateService
	methods  map[string]rpcMethod
}

// NewRPCHandler creates an RPCHandler backed by the given service ports.
func NewRPCHandler(projects ports.ProjectService, state ports.StateService) *RPCHandler {
	h := &RPCHandler{projects: projects, state: state}
	h.methods = map[string]rpcMethod{
		MethodGetProjects:   h.getProjects,
		MethodInit:          h.initProject,
		MethodImportArduino: h.importArduino,
		MethodImportPIO:     h.importPIO,
		MethodGetExamples:   h.getExamples,
		MethodGetState:      h.getState,
		MethodSaveState:     h.saveState,
	}
	return h
}

// ServeHTTP handles a single call or a batch. Protocol and method errors
// are reported in the JSON-RPC envelope with status 200; a request made up
// only of notifications gets 204.
func (h *RPCHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, r, http.StatusOK, dto.NewErrorReply(nil, dto.ErrInvalidRequest))
			return
		}
		writeJSON(w, r, http.StatusOK, dto.NewErrorReply(nil, dto.ErrParse))
		return
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		writeJSON(w, r, http.StatusOK, dto.NewErrorReply(nil, dto.ErrParse))
		return
	}

	if body[0] != '[' {
		resp, ok := h.call(r.Context(), body)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	var batch []json.RawMessage
	if err := json.Unmarshal(body, &batch); err != nil {
		writeJSON(w, r, http.StatusOK, dto.NewErrorReply(nil, dto.ErrParse))
		return
	}
	if len(batch) == 0 {
		writeJSON(w, r, http.StatusOK, dto.NewErrorReply(nil, dto.ErrInvalidRequest))
		return
	}

	replies := h.callBatch(r.Context(), batch)
	if len(replies) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, http.StatusOK, replies)
}

// callBatch runs the calls of a batch concurrently and returns the replies
// in request order, leaving out notifications.
func (h *RPCHandler) callBatch(ctx context.Context, batch []json.RawMessage) []dto.RPCResponse {
	type slot struct {
		resp dto.RPCResponse
		ok   bool
	}
	slots := make([]slot, len(batch))

	var wg sync.WaitGroup
	for i, raw := range batch {
		wg.Go(func() {
			resp, ok := h.call(ctx, raw)
			slots[i] = slot{resp: resp, ok: ok}
		})
	}
	wg.Wait()

	replies := make([]dto.RPCResponse, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			replies = append(replies, s.resp)
		}
	}
	return replies
}

// call executes one request. The second result is false for notifications.
func (h *RPCHandler) call(ctx context.Context, raw json.RawMessage) (dto.RPCResponse, bool) {
	var req dto.RPCRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return dto.NewErrorReply(nil, dto.ErrInvalidRequest), true
	}
	if err := req.Validate(); err != nil {
		return dto.NewErrorReply(req.ID, dto.ErrInvalidRequest), !req.IsNotification()
	}

	ctx, span := otel.GetTracerProvider().Tracer("jsonrpc").Start(ctx, req.Method,
		trace.WithAttributes(
			attribute.String("rpc.system", "jsonrpc"),
			attribute.String("rpc.method", req.Method),
		),
	)
	defer span.End()

	logger := logging.FromContext(ctx).With(slog.String("rpc_method", req.Method))

	method, ok := h.methods[req.Method]
	if !ok {
		logger.DebugContext(ctx, "unknown rpc method")
		span.SetAttributes(attribute.Int("rpc.jsonrpc.error_code", dto.CodeMethodNotFound))
		return dto.NewErrorReply(req.ID, dto.MethodNotFound(req.Method)), !req.IsNotification()
	}

	result, err := method(ctx, req.Params)
	if err != nil {
		rpcErr := dto.NewRPCError(err)
		span.SetAttributes(attribute.Int("rpc.jsonrpc.error_code", rpcErr.Code))
		if rpcErr.Code == dto.CodeInternalError {
			span.RecordError(err)
			span.SetStatus(codes.Error, rpcErr.Message)
			logger.ErrorContext(ctx, "rpc call failed", slog.Any("error", err))
		} else {
			logger.DebugContext(ctx, "rpc call rejected", slog.Int("code", rpcErr.Code), slog.Any("error", err))
		}
		return dto.RPCResponse{JSONRPC: dto.Version, Error: rpcErr, ID: req.ID}, !req.IsNotification()
	}
	return dto.NewResult(req.ID, result), !req.IsNotification()
}

// decode wraps dto.DecodeParams, reporting failures as invalid params.
func decode(raw json.RawMessage, names []string, dst any) error {
	if err := dto.DecodeParams(raw, names, dst); err != nil {
		return dto.InvalidParams(err)
	}
	return nil
}

// await waits for a started operation. A failed start is returned as is.
func await(ctx context.Context, start func() (*async.Pending[string], error)) (any, error) {
	p, err := start()
	if err != nil {
		return nil, err
	}
	return p.Wait(ctx)
}

func (h *RPCHandler) getProjects(ctx context.Context, raw json.RawMessage) (any, error) {
	var p dto.GetProjectsParams
	if err := decode(raw, dto.GetProjectsParamNames, &p); err != nil {
		return nil, err
	}
	summaries, err := h.projects.ListProjects(ctx, p.ProjectDirs)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectSummaries(summaries), nil
}

func (h *RPCHandler) initProject(ctx context.Context, raw json.RawMessage) (any, error) {
	var p dto.InitParams
	if err := decode(raw, dto.InitParamNames, &p); err != nil {
		return nil, err
	}
	return await(ctx, func() (*async.Pending[string], error) {
		return h.projects.InitProject(ctx, ports.InitRequest{
			Board:      p.Board,
			Framework:  p.Framework,
			ProjectDir: p.ProjectDir,
		})
	})
}

func (h *RPCHandler) importArduino(ctx context.Context, raw json.RawMessage) (any, error) {
	var p dto.ImportArduinoParams
	if err := decode(raw, dto.ImportArduinoParamNames, &p); err != nil {
		return nil, err
	}
	return await(ctx, func() (*async.Pending[string], error) {
		return h.projects.ImportForeign(ctx, ports.ImportForeignRequest{
			Board:         p.Board,
			UseVendorLibs: p.UseArduinoLibs,
			SourceDir:     p.ArduinoProjectDir,
		})
	})
}

func (h *RPCHandler) importPIO(ctx context.Context, raw json.RawMessage) (any, error) {
	var p dto.ImportPIOParams
	if err := decode(raw, dto.ImportPIOParamNames, &p); err != nil {
		return nil, err
	}
	return await(ctx, func() (*async.Pending[string], error) {
		return h.projects.ImportNative(ctx, ports.ImportNativeRequest{SourceDir: p.ProjectDir})
	})
}

func (h *RPCHandler) getExamples(ctx context.Context, raw json.RawMessage) (any, error) {
	if err := decode(raw, nil, &struct{}{}); err != nil {
		return nil, err
	}
	catalogs, err := h.projects.ListExamples(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToExampleCatalogs(catalogs), nil
}

func (h *RPCHandler) getState(ctx context.Context, raw json.RawMessage) (any, error) {
	if err := decode(raw, nil, &struct{}{}); err != nil {
		return nil, err
	}
	st, err := h.state.GetState(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToAppState(st), nil
}

func (h *RPCHandler) saveState(ctx context.Context, raw json.RawMessage) (any, error) {
	var p dto.SaveStateParams
	if err := decode(raw, dto.SaveStateParamNames, &p); err != nil {
		return nil, err
	}
	saved, err := h.state.SaveState(ctx, p.State.ToDomain())
	if err != nil {
		return nil, err
	}
	return dto.ToAppState(saved), nil
}
