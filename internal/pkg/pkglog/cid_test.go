package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelationID(ctx); got != "" {
		t.Fatalf("expected empty correlation id, got %q", got)
	}

	ctx = SetCorrelationID(ctx, "cid-123")
	if got := GetCorrelationID(ctx); got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
}

func TestUploadID(t *testing.T) {
	ctx := SetCorrelationID(context.Background(), "cid-1")
	if got := GetUploadID(ctx); got != "" {
		t.Fatalf("expected empty upload id, got %q", got)
	}

	ctx = SetUploadID(ctx, "up-1")
	if got := GetUploadID(ctx); got != "up-1" {
		t.Fatalf("expected up-1, got %q", got)
	}
	if got := GetCorrelationID(ctx); got != "cid-1" {
		t.Fatalf("upload id must not hide correlation id, got %q", got)
	}
}
