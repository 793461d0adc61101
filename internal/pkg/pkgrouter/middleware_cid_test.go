package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkglog"
)

type staticGenerator struct {
	value string
	calls int
}

func (g *staticGenerator) Generate() string {
	g.calls++
	return g.value
}

func TestMiddlewareCorrelationID(t *testing.T) {
	for _, tc := range []struct {
		name      string
		headers   map[string]string
		wantCID   string
		wantCalls int
	}{
		{"correlation header", map[string]string{HeaderCorrelationID: "header-cid"}, "header-cid", 0},
		{"request id fallback", map[string]string{HeaderRequestID: "req-cid"}, "req-cid", 0},
		{"correlation wins", map[string]string{HeaderCorrelationID: "a", HeaderRequestID: "b"}, "a", 0},
		{"generated when missing", nil, "generated", 1},
		{"generated when unprintable", map[string]string{HeaderCorrelationID: "bad\x01id"}, "generated", 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			gen := &staticGenerator{value: "generated"}

			var gotCID string
			wrapped := middlewareCorrelationID(gen)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCID = pkglog.GetCorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/upload", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if got := rec.Header().Get(HeaderCorrelationID); got != tc.wantCID {
				t.Fatalf("response header = %q, want %q", got, tc.wantCID)
			}
			if gotCID != tc.wantCID {
				t.Fatalf("context cid = %q, want %q", gotCID, tc.wantCID)
			}
			if gen.calls != tc.wantCalls {
				t.Fatalf("generator calls = %d, want %d", gen.calls, tc.wantCalls)
			}
		})
	}
}

func TestMiddlewareCorrelationIDWithoutGenerator(t *testing.T) {
	var gotCID string
	wrapped := middlewareCorrelationID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCID = pkglog.GetCorrelationID(r.Context())
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if gotCID != "" || rec.Header().Get(HeaderCorrelationID) != "" {
		t.Fatalf("expected no correlation id, got %q", gotCID)
	}
}
