package compare

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/shandysiswandi/gocompare/internal/compare/inbound"
	"github.com/shandysiswandi/gocompare/internal/compare/store"
	"github.com/shandysiswandi/gocompare/internal/compare/usecase"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgblob"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkguid"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Context context.Context
	Blobs   pkgblob.Store
	ID      pkguid.StringID
	NumID   pkguid.NumberID
}

// New wires the upload module and returns a closer for its record store.
func New(dep Dependency) (func(context.Context) error, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := store.Open(ctx,
		dep.Config.GetString("storage.record.driver"),
		dep.Config.GetString("storage.record.dsn"),
	)
	if err != nil {
		return nil, err
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:     records,
		Blobs:     dep.Blobs,
		ID:        dep.ID,
		NumID:     dep.NumID,
		Extension: dep.Config.GetString("upload.extension"),
	})

	var perSecond rate.Limit
	if n := dep.Config.GetInt("upload.rate_per_minute"); n > 0 {
		perSecond = rate.Limit(float64(n) / 60)
	}
	inbound.RegisterHTTPEndpoint(dep.Router, uc,
		inbound.WithMaxUploadSize(dep.Config.GetSize("upload.max_file_size")),
		inbound.WithUploadRate(perSecond, int(dep.Config.GetInt("upload.rate_burst"))),
	)

	return func(context.Context) error {
		return records.Close()
	}, nil
}
