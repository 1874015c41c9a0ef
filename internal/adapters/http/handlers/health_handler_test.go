package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pio-home/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("connection refused")

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"platformio-core": nil, "state-db": nil},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"platformio-core":"ok","state-db":"ok"}}`,
		},
		{
			name:       "required check fails",
			results:    map[string]error{"platformio-core": errRefused, "state-db": nil},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"not_ready","checks":{"platformio-core":"connection refused","state-db":"ok"}}`,
		},
		{
			name:       "optional check fails",
			results:    map[string]error{"platformio-core": nil, "board-registry": errRefused},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"degraded","checks":{"platformio-core":"ok","board-registry":"connection refused"}}`,
		},
		{
			name:       "required failure wins over optional",
			results:    map[string]error{"state-db": errRefused, "board-registry": errRefused},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"not_ready","checks":{"state-db":"connection refused","board-registry":"connection refused"}}`,
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry, "board-registry")

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantStatus)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
