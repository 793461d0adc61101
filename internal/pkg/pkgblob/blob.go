package pkgblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkgconfig"
)

// ErrInvalidName is returned when a folder or file name would escape its folder.
var ErrInvalidName = errors.New("pkgblob: invalid object name")

// Store persists artifacts grouped by folder.
type Store interface {
	// Put writes data as dir/name, replacing any previous object, and returns its path.
	Put(ctx context.Context, dir, name string, data []byte) (string, error)
	// Open returns a reader for dir/name. The caller closes it.
	Open(ctx context.Context, dir, name string) (io.ReadCloser, error)
	// Location returns the backend path of the folder dir.
	Location(dir string) string
	Close() error
}

// Driver names accepted by storage.blob.driver.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
	DriverGCS   = "gcs"
	DriverAzure = "azure"
)

// New builds the Store configured under storage.blob.*.
func New(ctx context.Context, cfg pkgconfig.Config) (Store, error) {
	driver := strings.ToLower(cfg.GetString("storage.blob.driver"))
	switch driver {
	case "", DriverLocal:
		return NewLocal(cfg.GetString("storage.blob.local.root"))
	case DriverS3:
		return NewS3(S3Config{
			Region:    cfg.GetString("storage.blob.s3.region"),
			Endpoint:  cfg.GetString("storage.blob.s3.endpoint"),
			Bucket:    cfg.GetString("storage.blob.s3.bucket"),
			Prefix:    cfg.GetString("storage.blob.s3.prefix"),
			AccessKey: cfg.GetString("storage.blob.s3.access_key"),
			SecretKey: cfg.GetString("storage.blob.s3.secret_key"),
			PathStyle: cfg.GetBool("storage.blob.s3.path_style"),
		})
	case DriverGCS:
		return NewGCS(ctx, GCSConfig{
			Bucket:          cfg.GetString("storage.blob.gcs.bucket"),
			Prefix:          cfg.GetString("storage.blob.gcs.prefix"),
			CredentialsFile: cfg.GetString("storage.blob.gcs.credentials_file"),
			Endpoint:        cfg.GetString("storage.blob.gcs.endpoint"),
		})
	case DriverAzure:
		return NewAzure(AzureConfig{
			AccountName: cfg.GetString("storage.blob.azure.account_name"),
			AccountKey:  cfg.GetString("storage.blob.azure.account_key"),
			Container:   cfg.GetString("storage.blob.azure.container"),
			Prefix:      cfg.GetString("storage.blob.azure.prefix"),
			ServiceURL:  cfg.GetString("storage.blob.azure.service_url"),
		})
	default:
		return nil, fmt.Errorf("pkgblob: unsupported driver %q", driver)
	}
}

func checkName(parts ...string) error {
	for _, p := range parts {
		if p == "" || p == "." || p == ".." || strings.ContainsAny(p, `/\`) {
			return fmt.Errorf("%w: %q", ErrInvalidName, p)
		}
	}

	return nil
}

// objectKey joins prefix, dir and name with forward slashes for object stores.
func objectKey(prefix, dir, name string) string {
	return path.Join(strings.Trim(prefix, "/"), dir, name)
}
