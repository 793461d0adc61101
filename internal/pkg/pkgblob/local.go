package pkgblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

// DefaultLocalRoot is used when no root directory is configured.
const DefaultLocalRoot = "./uploads"

// Local keeps artifacts on the filesystem under a root directory.
type Local struct {
	root string
}

// NewLocal prepares root (creating it if needed) and returns a Local store.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		root = DefaultLocalRoot
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("pkgblob: create root %q: %w", root, err)
	}

	return &Local{root: root}, nil
}

func (l *Local) Location(dir string) string {
	return filepath.Join(l.root, dir)
}

func (l *Local) Put(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkName(dir, name); err != nil {
		return "", err
	}

	folder := l.Location(dir)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("pkgblob: create folder: %w", err)
	}

	p := filepath.Join(folder, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("pkgblob: write %s: %w", name, err)
	}

	return p, nil
}

func (l *Local) Open(ctx context.Context, dir, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkName(dir, name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.Location(dir), name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, pkgerror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pkgblob: open %s: %w", name, err)
	}

	return f, nil
}

func (l *Local) Close() error {
	return nil
}
