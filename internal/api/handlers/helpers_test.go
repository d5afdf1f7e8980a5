package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/utils/auth"
)

// noUserInCtx marks cases that simulate a missing authentication
// middleware.
const noUserInCtx = "dont-put-to-ctx"

func testAuthHandlers(t *testing.T,
	endpoint string,
	handlerFunc http.HandlerFunc,
	login, password string,
	wantToken bool,
	wantCode int,
) {
	t.Helper()

	reqBody := fmt.Sprintf(`{"login":%s, "password":%s}`,
		login, password)
	req := httptest.NewRequest(
		http.MethodPost, endpoint, strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handlerFunc(rr, req)

	res := rr.Result()
	err := res.Body.Close()
	require.NoError(t, err)

	hasToken := false
	for _, c := range res.Cookies() {
		if c.Name == auth.CookieName && len(c.Value) != 0 {
			hasToken = true
			break
		}
	}

	assert.Equal(t, wantToken, hasToken)
	assert.Equal(t, wantCode, rr.Code)
}

type ResponseFixture struct {
	TestcaseName string          `json:"name"`
	Responses    json.RawMessage `json:"responses"`
}

func loadResponseFixtures(t *testing.T, file string) map[string]string {
	t.Helper()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var temp []ResponseFixture
	require.NoError(t, json.Unmarshal(data, &temp))

	fixtures := make(map[string]string)
	for _, f := range temp {
		fixtures[f.TestcaseName] = string(f.Responses)
	}
	return fixtures
}

func newRequest(t *testing.T, method, target, body, userID string) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != noUserInCtx {
		userIDCtx := context.WithValue(
			req.Context(), model.KeyContextUserID, userID)
		req = req.WithContext(userIDCtx)
	}
	return req
}

func checkResponse(t *testing.T, rr *httptest.ResponseRecorder, wantCode int, wantBody string) {
	t.Helper()

	res := rr.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	assert.Equal(t, wantCode, res.StatusCode)
	if wantBody != "" {
		assert.JSONEq(t, wantBody, string(body))
	}
}
