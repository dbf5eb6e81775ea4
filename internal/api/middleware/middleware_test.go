package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apimw "github.com/arco/demo/internal/api/middleware"
)

func echoCorrelation() http.Handler {
	return apimw.CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(apimw.GetCorrelationID(r.Context())))
	}))
}

func TestCorrelationID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"echoes correlation id", map[string]string{apimw.HeaderCorrelationID: "abc"}, "abc"},
		{"falls back to request id", map[string]string{apimw.HeaderRequestID: "req-1"}, "req-1"},
		{"correlation id wins", map[string]string{apimw.HeaderCorrelationID: "c", apimw.HeaderRequestID: "r"}, "c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			echoCorrelation().ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Body.String())
			assert.Equal(t, tc.want, w.Header().Get(apimw.HeaderCorrelationID))
		})
	}
}

func TestCorrelationID_Generated(t *testing.T) {
	for _, in := range []string{"", strings.Repeat("x", 129)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if in != "" {
			req.Header.Set(apimw.HeaderCorrelationID, in)
		}
		w := httptest.NewRecorder()

		echoCorrelation().ServeHTTP(w, req)

		_, err := uuid.Parse(w.Body.String())
		require.NoError(t, err, "expected a generated UUID")
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := apimw.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
}
