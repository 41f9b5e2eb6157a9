package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	testlog "service-dispatch/internal/testutil"
)

func TestHandlers_Ping(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	New(nil).Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, "pong", body["message"])
}

func TestHandlers_BaseRoutes(t *testing.T) {
	t.Parallel()

	h := New(testlog.New().Logger())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		code    int
		message string
	}{
		{name: "healthcheck", handler: h.HealthcheckHead, method: http.MethodHead, code: http.StatusNoContent},
		{name: "not found", handler: h.NotFound, method: http.MethodGet, code: http.StatusNotFound, message: "route not found"},
		{name: "method not allowed", handler: h.MethodNotAllowed, method: http.MethodPut, code: http.StatusMethodNotAllowed, message: "method not allowed"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			tc.handler(rr, httptest.NewRequest(tc.method, "/x", nil))
			require.Equal(t, tc.code, rr.Code)
			if tc.message == "" {
				require.Zero(t, rr.Body.Len())
				return
			}
			var body errResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			require.Equal(t, tc.message, body.Error)
		})
	}
}
