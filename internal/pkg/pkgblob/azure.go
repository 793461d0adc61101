package pkgblob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

// AzureConfig configures an Azure Blob Storage container with shared-key auth.
type AzureConfig struct {
	AccountName string
	AccountKey  string
	Container   string
	Prefix      string
	ServiceURL  string // defaults to https://<account>.blob.core.windows.net
}

// Azure keeps artifacts as block blobs in a single container.
type Azure struct {
	client    *azblob.Client
	container string
	prefix    string
}

func NewAzure(cfg AzureConfig) (*Azure, error) {
	if cfg.AccountName == "" || cfg.AccountKey == "" {
		return nil, errors.New("pkgblob: azure account name and key are required")
	}
	if cfg.Container == "" {
		return nil, errors.New("pkgblob: azure container is required")
	}

	cred, err := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("pkgblob: create shared key credential: %w", err)
	}

	serviceURL := cfg.ServiceURL
	if serviceURL == "" {
		serviceURL = fmt.Sprintf("https://%s.blob.core.windows.net", cfg.AccountName)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("pkgblob: create azure blob client: %w", err)
	}

	return &Azure{client: client, container: cfg.Container, prefix: cfg.Prefix}, nil
}

func (a *Azure) Location(dir string) string {
	return "az://" + a.container + "/" + objectKey(a.prefix, dir, "")
}

func (a *Azure) Put(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := checkName(dir, name); err != nil {
		return "", err
	}

	key := objectKey(a.prefix, dir, name)
	_, err := a.client.UploadBuffer(ctx, a.container, key, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr("text/csv")},
	})
	if err != nil {
		return "", fmt.Errorf("pkgblob: upload az://%s/%s: %w", a.container, key, err)
	}

	return "az://" + a.container + "/" + key, nil
}

func (a *Azure) Open(ctx context.Context, dir, name string) (io.ReadCloser, error) {
	if err := checkName(dir, name); err != nil {
		return nil, err
	}

	key := objectKey(a.prefix, dir, name)
	resp, err := a.client.DownloadStream(ctx, a.container, key, nil)
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return nil, pkgerror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pkgblob: download az://%s/%s: %w", a.container, key, err)
	}

	return resp.Body, nil
}

func (a *Azure) Close() error {
	return nil
}
