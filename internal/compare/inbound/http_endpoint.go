package inbound

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/shandysiswandi/gocompare/internal/compare/usecase"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkguid"
)

const (
	formSource   = "sourceFile"
	formCompared = "comparedFile"
	formSort     = "sort"
	formCompare  = "compare"

	maxFormMemory = 32 << 20
)

type HTTPEndpoint struct {
	uc            uc
	maxUploadSize int64
	limiter       *rate.Limiter
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	if err := h.limitBody(r); err != nil {
		return nil, err
	}

	in, cleanup, err := h.readUploadForm(r)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := h.uc.Upload(ctx, in)
	if err != nil {
		return nil, err
	}

	return UploadResponse{
		UploadID:               result.UploadID,
		FolderPath:             result.Location,
		SourceFileName:         result.SourceFileName,
		ComparedFileName:       result.ComparedFileName,
		SortedSourceFilePath:   result.SortedSourcePath,
		SortedComparedFilePath: result.SortedComparedPath,
		DifferenceFilePath:     result.DifferencePath,
	}, nil
}

var errUploadNotFound = pkgerror.NewBusiness("upload not found", pkgerror.CodeNotFound)

func (h *HTTPEndpoint) Record(ctx context.Context, r *http.Request) (any, error) {
	id := strings.TrimSpace(pkgrouter.GetParam(ctx, "upload_id"))
	if !pkguid.ValidUUID(id) {
		return nil, errUploadNotFound
	}

	rec, err := h.uc.Record(ctx, id)
	if err != nil {
		return nil, err
	}

	return RecordResponse{
		UploadID:         rec.UploadID,
		FolderPath:       rec.Location,
		SourceFileName:   rec.SourceFileName,
		ComparedFileName: rec.ComparedFileName,
		CreatedAt:        rec.CreatedAt,
	}, nil
}

func (h *HTTPEndpoint) File(ctx context.Context, r *http.Request) (any, error) {
	id := pkgrouter.GetParam(ctx, "upload_id")
	if !pkguid.ValidUUID(id) {
		return nil, errUploadNotFound
	}

	rc, err := h.uc.Open(ctx, id, pkgrouter.GetParam(ctx, "name"))
	if err != nil {
		return nil, err
	}

	return FileResponse{body: rc}, nil
}

// limitBody buffers the request body, rejecting it once it passes maxUploadSize.
func (h *HTTPEndpoint) limitBody(r *http.Request) error {
	if h.maxUploadSize <= 0 || r.Body == nil {
		return nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, h.maxUploadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return pkgerror.NewBusiness(fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit), pkgerror.CodeTooLarge)
		}
		return pkgerror.NewInvalidFormat()
	}
	r.Body = io.NopCloser(bytes.NewReader(data))

	return nil
}

// readUploadForm collects both files and flags. A request that is not
// multipart carries no files and is left to usecase validation.
func (h *HTTPEndpoint) readUploadForm(r *http.Request) (usecase.UploadInput, func(), error) {
	noop := func() {}

	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return usecase.UploadInput{}, noop, nil
	}
	if err != nil {
		return usecase.UploadInput{}, noop, pkgerror.NewInvalidFormat()
	}
	cleanup := func() { _ = r.MultipartForm.RemoveAll() }

	flags := map[string]string{}
	sortFlag, ok := parseFlag(r.MultipartForm.Value[formSort])
	if !ok {
		flags["sort_error"] = "sort must be a boolean"
	}
	compareFlag, ok := parseFlag(r.MultipartForm.Value[formCompare])
	if !ok {
		flags["compare_error"] = "compare must be a boolean"
	}
	if len(flags) > 0 {
		cleanup()
		return usecase.UploadInput{}, noop, pkgerror.NewValidation(pkgerror.CodeInvalidFormat, flags)
	}

	src, err := readFormFile(r.MultipartForm.File[formSource])
	if err != nil {
		cleanup()
		return usecase.UploadInput{}, noop, pkgerror.NewServer(err)
	}
	cmp, err := readFormFile(r.MultipartForm.File[formCompared])
	if err != nil {
		cleanup()
		return usecase.UploadInput{}, noop, pkgerror.NewServer(err)
	}

	return usecase.UploadInput{
		Source:   src,
		Compared: cmp,
		Sort:     sortFlag,
		Compare:  compareFlag,
	}, cleanup, nil
}

func readFormFile(headers []*multipart.FileHeader) (*usecase.File, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	fh := headers[0]
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &usecase.File{Name: fh.Filename, Data: data}, nil
}

// parseFlag reads an optional boolean form field; absent or empty is false.
func parseFlag(values []string) (bool, bool) {
	if len(values) == 0 {
		return false, true
	}

	switch strings.ToLower(strings.TrimSpace(values[0])) {
	case "", "false", "0", "no", "off":
		return false, true
	case "true", "1", "yes", "on":
		return true, true
	default:
		return false, false
	}
}
