package pkgblob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

// GCSConfig configures a Google Cloud Storage bucket.
type GCSConfig struct {
	Bucket          string
	Prefix          string
	CredentialsFile string // service account key; application default credentials when empty
	Endpoint        string // emulator endpoint, unauthenticated
}

// GCS keeps artifacts as objects in a single bucket.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCS(ctx context.Context, cfg GCSConfig) (*GCS, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("pkgblob: gcs bucket is required")
	}

	var opts []option.ClientOption
	switch {
	case cfg.Endpoint != "":
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("pkgblob: create gcs client: %w", err)
	}

	return &GCS{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (g *GCS) Location(dir string) string {
	return "gs://" + g.bucket + "/" + objectKey(g.prefix, dir, "")
}

func (g *GCS) Put(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := checkName(dir, name); err != nil {
		return "", err
	}

	key := objectKey(g.prefix, dir, name)
	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "text/csv"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("pkgblob: write gs://%s/%s: %w", g.bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("pkgblob: finalize gs://%s/%s: %w", g.bucket, key, err)
	}

	return "gs://" + g.bucket + "/" + key, nil
}

func (g *GCS) Open(ctx context.Context, dir, name string) (io.ReadCloser, error) {
	if err := checkName(dir, name); err != nil {
		return nil, err
	}

	key := objectKey(g.prefix, dir, name)
	r, err := g.client.Bucket(g.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, pkgerror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pkgblob: read gs://%s/%s: %w", g.bucket, key, err)
	}

	return r, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
