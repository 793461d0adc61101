package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/shandysiswandi/gocompare/internal/compare/entity"
	"github.com/shandysiswandi/gocompare/internal/compare/table"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkglog"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkguid"
)

// DefaultExtension is the accepted upload extension when none is configured.
const DefaultExtension = "csv"

type Store interface {
	CreateRecord(ctx context.Context, rec entity.UploadRecord) error
	GetRecord(ctx context.Context, uploadID string) (entity.UploadRecord, error)
}

type BlobStore interface {
	Put(ctx context.Context, dir, name string, data []byte) (string, error)
	Open(ctx context.Context, dir, name string) (io.ReadCloser, error)
	Location(dir string) string
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store     Store
	Blobs     BlobStore
	Clock     Clock
	ID        pkguid.StringID
	NumID     pkguid.NumberID
	Extension string
}

type Usecase struct {
	store Store
	blobs BlobStore
	clock Clock
	id    pkguid.StringID
	numID pkguid.NumberID
	ext   string
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	ext := strings.ToLower(strings.TrimPrefix(dep.Extension, "."))
	if ext == "" {
		ext = DefaultExtension
	}

	return &Usecase{
		store: dep.Store,
		blobs: dep.Blobs,
		clock: clock,
		id:    dep.ID,
		numID: dep.NumID,
		ext:   ext,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Upload validates and stores both files, runs the requested sort and diff
// stages on the stored originals, then records the upload.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if u.store == nil || u.blobs == nil || u.id == nil || u.numID == nil {
		return UploadResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	logStage(ctx, entity.StageReceived)

	srcName, cmpName, err := u.validate(in)
	if err != nil {
		return UploadResult{}, err
	}

	uploadID := u.id.Generate()
	ctx = pkglog.SetUploadID(ctx, uploadID)
	logStage(ctx, entity.StageValidated)

	res := UploadResult{
		UploadID:         uploadID,
		Location:         u.blobs.Location(uploadID),
		SourceFileName:   srcName,
		ComparedFileName: cmpName,
	}

	if _, err := u.blobs.Put(ctx, uploadID, srcName, in.Source.Data); err != nil {
		return UploadResult{}, pkgerror.NewServer(err)
	}
	if _, err := u.blobs.Put(ctx, uploadID, cmpName, in.Compared.Data); err != nil {
		return UploadResult{}, pkgerror.NewServer(err)
	}
	logStage(ctx, entity.StageStored)

	if in.Sort || in.Compare {
		// Sort and diff only read the originals and write disjoint names.
		stages, sctx := pkgroutine.WithContext(ctx, 2)
		if in.Sort {
			stages.Go(sctx, func(ctx context.Context) error {
				return u.sortStage(ctx, &res, in.Source.Data, in.Compared.Data)
			})
		}
		if in.Compare {
			stages.Go(sctx, func(ctx context.Context) error {
				return u.diffStage(ctx, &res, in.Source.Data, in.Compared.Data)
			})
		}
		if err := stages.Wait(); err != nil {
			return UploadResult{}, normalizeErr(err)
		}
	}

	rec := entity.UploadRecord{
		ID:               u.numID.Generate(),
		UploadID:         uploadID,
		Location:         res.Location,
		SourceFileName:   srcName,
		ComparedFileName: cmpName,
		CreatedAt:        u.clock.Now().Unix(),
	}
	if err := u.store.CreateRecord(ctx, rec); err != nil {
		return UploadResult{}, normalizeErr(err)
	}
	logStage(ctx, entity.StageRecorded)
	logStage(ctx, entity.StageResponded)

	return res, nil
}

func (u *Usecase) sortStage(ctx context.Context, res *UploadResult, srcData, cmpData []byte) error {
	src, err := parseTable(srcData, "source")
	if err != nil {
		return err
	}
	cmp, err := parseTable(cmpData, "compared")
	if err != nil {
		return err
	}

	srcPath, err := u.putTable(ctx, res.UploadID, entity.SortedName(res.SourceFileName), table.SortColumns(src))
	if err != nil {
		return err
	}
	cmpPath, err := u.putTable(ctx, res.UploadID, entity.SortedName(res.ComparedFileName), table.SortColumns(cmp))
	if err != nil {
		return err
	}

	res.SortedSourcePath = &srcPath
	res.SortedComparedPath = &cmpPath
	logStage(ctx, entity.StageSorted)

	return nil
}

func (u *Usecase) diffStage(ctx context.Context, res *UploadResult, srcData, cmpData []byte) error {
	src, err := parseTable(srcData, "source")
	if err != nil {
		return err
	}
	cmp, err := parseTable(cmpData, "compared")
	if err != nil {
		return err
	}

	diff, err := table.Diff(src, cmp)
	if errors.Is(err, table.ErrSchemaMismatch) {
		return pkgerror.NewBusiness(err.Error(), pkgerror.CodeInvalidInput)
	}
	if err != nil {
		return pkgerror.NewServer(err)
	}

	p, err := u.putTable(ctx, res.UploadID, entity.DifferenceName(u.ext), diff)
	if err != nil {
		return err
	}

	res.DifferencePath = &p
	logStage(ctx, entity.StageDiffed)

	return nil
}

func (u *Usecase) putTable(ctx context.Context, dir, name string, t *table.Table) (string, error) {
	data, err := t.Bytes()
	if err != nil {
		return "", pkgerror.NewServer(err)
	}

	p, err := u.blobs.Put(ctx, dir, name, data)
	if err != nil {
		return "", pkgerror.NewServer(err)
	}

	return p, nil
}

// Record returns the stored metadata of an upload.
func (u *Usecase) Record(ctx context.Context, uploadID string) (entity.UploadRecord, error) {
	if uploadID == "" {
		return entity.UploadRecord{}, pkgerror.NewInvalidInput(errors.New("upload_id is required"))
	}

	rec, err := u.store.GetRecord(ctx, uploadID)
	if err != nil {
		return entity.UploadRecord{}, mapStoreErr(err)
	}

	return rec, nil
}

// Open returns one artifact of a recorded upload. Only the originals and
// the names derived from them can be opened.
func (u *Usecase) Open(ctx context.Context, uploadID, name string) (io.ReadCloser, error) {
	rec, err := u.Record(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(rec.Files(u.ext), name) {
		return nil, pkgerror.NewBusiness("file not found", pkgerror.CodeNotFound)
	}

	rc, err := u.blobs.Open(ctx, uploadID, name)
	if errors.Is(err, pkgerror.ErrNotFound) {
		return nil, pkgerror.NewBusiness("file not found", pkgerror.CodeNotFound)
	}
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	return rc, nil
}

func parseTable(data []byte, label string) (*table.Table, error) {
	t, err := table.Read(bytes.NewReader(data))
	if err != nil {
		return nil, pkgerror.NewBusiness(fmt.Sprintf("%s file is not valid csv: %v", label, err), pkgerror.CodeInvalidFormat)
	}

	return t, nil
}

func logStage(ctx context.Context, stage entity.Stage) {
	slog.DebugContext(ctx, "upload stage reached", "stage", stage)
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("upload not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
