package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pio-home/mocks"
)

type rpcFixture struct {
	handler  *handlers.RPCHandler
	projects *mocks.MockProjectService
	state    *mocks.MockStateService
}

func newRPCFixture(t *testing.T) *rpcFixture {
	t.Helper()
	projects := mocks.NewMockProjectService(t)
	state := mocks.NewMockStateService(t)
	return &rpcFixture{
		handler:  handlers.NewRPCHandler(projects, state),
		projects: projects,
		state:    state,
	}
}

// post sends body to the handler and returns the recorder.
func (f *rpcFixture) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jsonrpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.handler.ServeHTTP(rec, req)
	return rec
}

// rpcReply is a decoded JSON-RPC response with the result left raw.
type rpcReply struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int            `json:"code"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	} `json:"error"`
	ID json.RawMessage `json:"id"`
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
