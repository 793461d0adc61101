package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgblob"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkglog"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.SetLevel(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)
	a.uuid = pkguid.NewUUID()

	var (
		snow *pkguid.Snowflake
		err  error
	)
	if a.config.GetString("uid.snowflake_node") == "" {
		snow, err = pkguid.NewSnowflake()
	} else {
		snow, err = pkguid.NewSnowflakeNode(a.config.GetInt("uid.snowflake_node"))
	}
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = snow
}

func (a *App) initResources() {
	blobs, err := pkgblob.New(a.ctx, a.config)
	if err != nil {
		slog.Error("failed to init blob storage", "driver", a.config.GetString("storage.blob.driver"), "error", err)
		os.Exit(1)
	}

	a.blobs = blobs
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	origins := a.config.GetArray("cors.allowed_origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: durationOr(a.config.GetDuration("server.read_header_timeout"), 10*time.Second),
		ReadTimeout:       a.config.GetDuration("server.read_timeout"),
		WriteTimeout:      a.config.GetDuration("server.write_timeout"),
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.shutdownTimeout = durationOr(a.config.GetDuration("server.shutdown_timeout"), 10*time.Second)

	a.closerFn[closerHTTPServer] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Blob Storage"] = func(context.Context) error {
		return a.blobs.Close()
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
