package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/utils/auth"
	"github.com/talx-hub/tour-points/internal/utils/logger"
)

var secret = []byte("super-secret-key")

func echoUserID(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(model.KeyContextUserID).(string)
	_, _ = w.Write([]byte(id))
}

func TestAuthentication(t *testing.T) {
	valid, err := auth.Authenticate("42", secret)
	require.NoError(t, err)
	foreign, err := auth.Authenticate("42", []byte("other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		cookie   *http.Cookie
		wantCode int
		wantBody string
	}{
		{"valid token", &valid, http.StatusOK, "42"},
		{"no cookie", nil, http.StatusUnauthorized, ""},
		{"garbage token", &http.Cookie{Name: auth.CookieName, Value: "garbage"}, http.StatusUnauthorized, ""},
		{"foreign secret", &foreign, http.StatusUnauthorized, ""},
	}

	h := Authentication(secret, slog.Default())(http.HandlerFunc(echoUserID))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestAdminToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		header   string
		wantCode int
	}{
		{"matching token", "admin-token", "admin-token", http.StatusOK},
		{"wrong token", "admin-token", "nope", http.StatusUnauthorized},
		{"missing header", "admin-token", "", http.StatusUnauthorized},
		{"disabled", "", "", http.StatusForbidden},
		{"disabled ignores header", "", "anything", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AdminToken(tt.token, slog.Default())(http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

			req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set(model.HeaderAdminToken, tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	var ctxLogger *slog.Logger
	h := middleware.RequestID(Logging(log)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ctxLogger = logger.FromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user/points/balance", http.NoBody))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	require.NotNil(t, ctxLogger)
	assert.NotSame(t, slog.Default(), ctxLogger)
	out := buf.String()
	assert.Contains(t, out, "request served")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "path=/api/user/points/balance")
	assert.Contains(t, out, "request_id=")
}
