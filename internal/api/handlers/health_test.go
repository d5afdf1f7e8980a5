package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/talx-hub/tour-points/internal/api/handlers/mocks"
)

func TestHealthHandler_Ping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"healthy", nil, http.StatusOK},
		{"db is down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := mocks.NewMockHealthChecker(t)
			checker.EXPECT().Healthy(mock.Anything).Return(tt.err)

			h := NewHealthHandler(checker, slog.Default())
			rr := httptest.NewRecorder()
			h.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}
