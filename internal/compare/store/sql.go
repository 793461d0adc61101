package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/shandysiswandi/gocompare/internal/compare/entity"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

const (
	insertRecord = `INSERT INTO upload_records
		(id, upload_id, folder_path, source_file_name, compared_file_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	selectRecord = `SELECT id, upload_id, folder_path, source_file_name, compared_file_name, created_at
		FROM upload_records WHERE upload_id = ?`
)

// sqlDrivers maps storage.record.driver to the registered database/sql driver.
var sqlDrivers = map[string]string{
	DriverSQLite:   "sqlite",
	DriverPostgres: "pgx",
	DriverMySQL:    "mysql",
}

// SQLStore keeps upload records in the upload_records table.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenSQL connects to dsn, applies migrations and returns the store.
//
// For sqlite the dsn is a file path; busy timeout and WAL pragmas are added
// when the dsn carries no query string.
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	name, ok := sqlDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("store: dsn is required")
	}
	if driver == DriverSQLite && !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if err := Migrate(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return NewSQLStore(db, driver), nil
}

// NewSQLStore wraps an already migrated database handle.
func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) CreateRecord(ctx context.Context, rec entity.UploadRecord) error {
	_, err := s.db.ExecContext(ctx, s.rebind(insertRecord),
		rec.ID, rec.UploadID, rec.Location, rec.SourceFileName, rec.ComparedFileName, rec.CreatedAt)
	if isUniqueViolation(err) {
		return errDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert upload record: %w", err)
	}

	return nil
}

func (s *SQLStore) GetRecord(ctx context.Context, uploadID string) (entity.UploadRecord, error) {
	var rec entity.UploadRecord
	err := s.db.QueryRowContext(ctx, s.rebind(selectRecord), uploadID).Scan(
		&rec.ID, &rec.UploadID, &rec.Location, &rec.SourceFileName, &rec.ComparedFileName, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.UploadRecord{}, pkgerror.ErrNotFound
	}
	if err != nil {
		return entity.UploadRecord{}, fmt.Errorf("select upload record: %w", err)
	}

	return rec, nil
}

func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	return false
}
