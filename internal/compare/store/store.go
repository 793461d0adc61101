// Package store persists upload records, in memory or in a SQL database.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/shandysiswandi/gocompare/internal/compare/entity"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

var errDuplicate = pkgerror.NewBusiness("upload already exists", pkgerror.CodeConflict)

// Driver names accepted by storage.record.driver.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// RecordStore keeps one immutable record per upload.
//
// CreateRecord fails with a conflict when the upload id already exists and
// GetRecord returns pkgerror.ErrNotFound for unknown ids.
type RecordStore interface {
	CreateRecord(ctx context.Context, rec entity.UploadRecord) error
	GetRecord(ctx context.Context, uploadID string) (entity.UploadRecord, error)
	Close() error
}

var (
	_ RecordStore = (*InMemoryStore)(nil)
	_ RecordStore = (*SQLStore)(nil)
)

// Open returns the record store for driver. An empty driver means memory.
func Open(ctx context.Context, driver, dsn string) (RecordStore, error) {
	switch d := strings.ToLower(driver); d {
	case "", DriverMemory:
		return NewInMemoryStore(), nil
	case DriverSQLite, DriverPostgres, DriverMySQL:
		return OpenSQL(ctx, d, dsn)
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
}
