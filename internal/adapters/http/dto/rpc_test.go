package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pio-home/internal/domain"
)

func TestNewRPCError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "not an arduino project",
			err:         domain.NewNotForeignProjectError("/tmp/sketch"),
			wantCode:    4000,
			wantMessage: "Not an Arduino project: /tmp/sketch",
		},
		{
			name:        "not a platformio project",
			err:         fmt.Errorf("import: %w", domain.NewNotNativeProjectError("/tmp/p")),
			wantCode:    4001,
			wantMessage: "Not a PlatformIO project: /tmp/p",
		},
		{
			name:        "build tool failure",
			err:         &domain.CommandError{Args: []string{"init"}, ExitCode: 1, Stderr: "boom"},
			wantCode:    4003,
			wantMessage: "build tool call failed: init (exit code 1): boom",
		},
		{
			name:        "wrapped build tool failure",
			err:         fmt.Errorf("awaiting init: %w", &domain.CommandError{Args: []string{"init"}, ExitCode: 2, Stderr: "no board"}),
			wantCode:    4003,
			wantMessage: "build tool call failed: init (exit code 2): no board",
		},
		{
			name:        "wrapped arduino kind error",
			err:         fmt.Errorf("import: %w", fmt.Errorf("checking sketch: %w", domain.NewNotForeignProjectError("/tmp/s"))),
			wantCode:    4000,
			wantMessage: "Not an Arduino project: /tmp/s",
		},
		{
			name:        "validation",
			err:         &domain.ValidationError{Fields: map[string]string{"board": "is required"}},
			wantCode:    dto.CodeInvalidParams,
			wantMessage: "validation error: board: is required",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("secret detail"),
			wantCode:    dto.CodeInternalError,
			wantMessage: "Internal error",
		},
		{
			name:        "rpc error passes through",
			err:         dto.MethodNotFound("nope"),
			wantCode:    dto.CodeMethodNotFound,
			wantMessage: "Method not found: nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.NewRPCError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestNewRPCError_CommandData(t *testing.T) {
	t.Parallel()

	got := dto.NewRPCError(&domain.CommandError{Args: []string{"init", "--board", "x"}, ExitCode: 2, Stderr: "Unknown board"})

	data, ok := got.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, data["exit_code"])
	assert.Equal(t, "Unknown board", data["stderr"])
}

func TestRPCRequest_Notification(t *testing.T) {
	t.Parallel()

	var withID, nullID, noID dto.RPCRequest
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"m","id":1}`), &withID))
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"m","id":null}`), &nullID))
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"m"}`), &noID))

	assert.False(t, withID.IsNotification())
	assert.False(t, nullID.IsNotification())
	assert.True(t, noID.IsNotification())
}

func TestRPCRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&dto.RPCRequest{JSONRPC: "2.0", Method: "m"}).Validate())
	assert.Error(t, (&dto.RPCRequest{JSONRPC: "1.0", Method: "m"}).Validate())
	assert.Error(t, (&dto.RPCRequest{JSONRPC: "2.0"}).Validate())
}

func TestRPCResponse_JSON(t *testing.T) {
	t.Parallel()

	ok, err := json.Marshal(dto.NewResult(json.RawMessage(`7`), []string{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","result":[],"id":7}`, string(ok))

	fail, err := json.Marshal(dto.NewErrorReply(nil, dto.ErrParse))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error"},"id":null}`, string(fail))
}
