package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"service-dispatch/internal/logx"
)

type stubLimiter struct {
	allow bool
}

func (s stubLimiter) Allow(string) bool { return s.allow }

func TestMiddleware_Allows_RequestPassesToNext(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	m := New(logx.Nop(), nil, stubLimiter{allow: true})
	h := m.Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/test", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code, "expected 200")
	require.Equal(t, 1, nextCalled, "expected next called once")
}

func TestMiddleware_Blocks_Returns429AndIncrementsCounter(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
	})

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ratelimit_denied_total",
		Help: "denied requests",
	})

	m := New(logx.Nop(), counter, stubLimiter{allow: false})
	h := m.Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/test", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, 0, nextCalled, "expected next not called")
	require.Equal(t, http.StatusTooManyRequests, w.Code, "expected 429")
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, "1", w.Header().Get("Retry-After"))
	require.Equal(t, `{"error":"too many requests"}`, w.Body.String())
	require.Equal(t, float64(1), testutil.ToFloat64(counter), "expected counter=1")
}

type recordingLimiter struct{ keys []string }

func (l *recordingLimiter) Allow(key string) bool {
	l.keys = append(l.keys, key)
	return true
}

func TestMiddleware_OperatorKey(t *testing.T) {
	t.Parallel()

	lim := &recordingLimiter{}
	h := New(nil, nil, lim).WithKey(OperatorOrIP("X-Operator-ID")).Handler()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodPost, "http://example/handover/sessions/s/scans", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	r.Header.Set("X-Operator-ID", "op-1")
	h.ServeHTTP(httptest.NewRecorder(), r)

	r = httptest.NewRequest(http.MethodPost, "http://example/handover/sessions/s/scans", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.Equal(t, []string{"op:op-1", "1.2.3.4"}, lim.keys)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"1.2.3.4:5678":   "1.2.3.4",
		"not-a-hostport": "not-a-hostport",
		"":               "unknown",
	}
	for remote, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
		r.RemoteAddr = remote
		require.Equal(t, want, clientIP(r), remote)
	}
}
