package pkgrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestChainOrder(t *testing.T) {
	order := make([]string, 0, 3)

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("mw1"), mw("mw2"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/uploads", nil))

	if !reflect.DeepEqual(order, []string{"mw1", "mw2", "handler"}) {
		t.Fatalf("unexpected order: %#v", order)
	}
}

func TestGetParam(t *testing.T) {
	params := httprouter.Params{{Key: "upload_id", Value: "abc"}}
	ctx := context.WithValue(context.Background(), httprouter.ParamsKey, params)

	if got := GetParam(ctx, "upload_id"); got != "abc" {
		t.Fatalf("expected upload_id=abc, got %q", got)
	}
	if got := GetParam(context.Background(), "upload_id"); got != "" {
		t.Fatalf("expected empty param, got %q", got)
	}
}

func TestMatchedRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/uploads/abc", nil)
	if got := MatchedRoute(req); got != "/uploads/abc" {
		t.Fatalf("expected raw path fallback, got %q", got)
	}

	params := httprouter.Params{{Key: httprouter.MatchedRoutePathParam, Value: "/uploads/:upload_id"}}
	req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
	if got := MatchedRoute(req); got != "/uploads/:upload_id" {
		t.Fatalf("expected pattern, got %q", got)
	}
}

func TestRecovererWritesInternalError(t *testing.T) {
	h := middlewareRecoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestRecovererRepanicsAbort(t *testing.T) {
	h := middlewareRecoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rvr := recover(); rvr != http.ErrAbortHandler { //nolint:errorlint // sentinel
			t.Fatalf("expected ErrAbortHandler, got %v", rvr)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestAppFrames(t *testing.T) {
	stack := strings.Join([]string{
		"goroutine 1 [running]:",
		"runtime/debug.Stack()",
		"\t/usr/local/go/src/runtime/debug/stack.go:26 +0x5e",
		"github.com/x/gocompare/internal/compare/usecase.(*Usecase).Upload(...)",
		"\t/src/gocompare/internal/compare/usecase/usecase.go:88 +0x1a",
	}, "\n")

	got := appFrames([]byte(stack))
	want := []string{"internal/compare/usecase/usecase.go:88"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected frames: %#v", got)
	}
}
