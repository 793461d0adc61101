package pkglog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

type captureHandler struct {
	attrs map[string]slog.Value
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	if h.attrs == nil {
		h.attrs = make(map[string]slog.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}

func TestContextHandlerAddsServiceAndCID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture}

	ctx := SetCorrelationID(context.Background(), "cid-abc")
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := handler.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got := capture.attrs["service"].String(); got != "gocompare" {
		t.Fatalf("expected service=gocompare, got %q", got)
	}
	if got := capture.attrs["_cID"].String(); got != "cid-abc" {
		t.Fatalf("expected _cID=cid-abc, got %q", got)
	}
}

func TestContextHandlerAddsUploadID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture}

	ctx := SetUploadID(context.Background(), "up-9")
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := handler.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got := capture.attrs["upload_id"].String(); got != "up-9" {
		t.Fatalf("expected upload_id=up-9, got %q", got)
	}
}

func TestContextHandlerSkipsMissingIDs(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture}

	ctx := context.Background()
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := handler.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if _, ok := capture.attrs["_cID"]; ok {
		t.Fatalf("did not expect _cID to be set")
	}
	if _, ok := capture.attrs["upload_id"]; ok {
		t.Fatalf("did not expect upload_id to be set")
	}
	if got := capture.attrs["service"].String(); got != "gocompare" {
		t.Fatalf("expected service=gocompare, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("debug")
	if got := level.Level(); got != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", got)
	}
}

func TestNewHandlerJSONShape(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf)).With("stage", "SORTED")

	ctx := SetUploadID(SetCorrelationID(context.Background(), "cid-1"), "up-1")
	logger.InfoContext(ctx, "stage reached")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	for key, want := range map[string]string{
		"msg":       "stage reached",
		"severity":  "INFO",
		"stage":     "SORTED",
		"_cID":      "cid-1",
		"upload_id": "up-1",
		"service":   "gocompare",
	} {
		if got, _ := line[key].(string); got != want {
			t.Fatalf("%s = %q, want %q (line %s)", key, got, want, buf.String())
		}
	}
	if _, ok := line["ts"]; !ok {
		t.Fatalf("expected ts key, got %s", buf.String())
	}
	if _, ok := line["time"]; ok {
		t.Fatalf("time key should be renamed, got %s", buf.String())
	}
}

func TestReplaceAttrSource(t *testing.T) {
	in := slog.Any(slog.SourceKey, &slog.Source{File: "/src/gocompare/internal/compare/usecase/usecase.go", Line: 12})
	if got := replaceAttr(nil, in); got.Key != "file" || got.Value.String() != "internal/compare/usecase/usecase.go:12" {
		t.Fatalf("unexpected attr: %v", got)
	}

	outside := slog.Any(slog.SourceKey, &slog.Source{File: "/go/pkg/mod/x/y.go", Line: 1})
	if got := replaceAttr(nil, outside); !got.Equal(slog.Attr{}) {
		t.Fatalf("expected empty attr for external source, got %v", got)
	}
}
