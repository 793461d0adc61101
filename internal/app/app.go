package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shandysiswandi/gocompare/internal/pkg/pkgblob"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkglog"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// resources
	blobs pkgblob.Store

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// shutdown
	closerFn        map[string]func(context.Context) error
	shutdownTimeout time.Duration
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initResources()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// ShutdownTimeout bounds how long Stop may spend draining requests and
// closing resources.
func (a *App) ShutdownTimeout() time.Duration {
	return a.shutdownTimeout
}
