package inbound

import (
	"context"
	"io"

	"golang.org/x/time/rate"

	"github.com/shandysiswandi/gocompare/internal/compare/entity"
	"github.com/shandysiswandi/gocompare/internal/compare/usecase"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgrouter"
)

type uc interface {
	Upload(ctx context.Context, in usecase.UploadInput) (usecase.UploadResult, error)
	Record(ctx context.Context, uploadID string) (entity.UploadRecord, error)
	Open(ctx context.Context, uploadID, name string) (io.ReadCloser, error)
}

// Option tunes the upload endpoint.
type Option func(*HTTPEndpoint)

// WithMaxUploadSize caps the whole multipart body in bytes. Zero or less
// leaves the body unlimited.
func WithMaxUploadSize(n int64) Option {
	return func(h *HTTPEndpoint) { h.maxUploadSize = n }
}

// WithUploadRate throttles POST /upload to limit requests per second across
// all clients, allowing bursts of up to burst requests.
func WithUploadRate(limit rate.Limit, burst int) Option {
	return func(h *HTTPEndpoint) {
		if limit > 0 {
			h.limiter = rate.NewLimiter(limit, max(burst, 1))
		}
	}
}

// RegisterHTTPEndpoint mounts the upload routes.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, opts ...Option) {
	end := &HTTPEndpoint{uc: uc}
	for _, opt := range opts {
		opt(end)
	}

	var uploadMws []pkgrouter.Middleware
	if end.limiter != nil {
		uploadMws = append(uploadMws, pkgrouter.RateLimit(end.limiter))
	}
	r.POST("/upload", end.Upload, uploadMws...)

	r.GET("/uploads/:upload_id", end.Record)
	r.GET("/uploads/:upload_id/files/:name", end.File)
}
