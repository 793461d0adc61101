package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const closerHTTPServer = "HTTP Server"

// Start serves HTTP in the background. The returned channel is closed once a
// termination signal arrives.
func (a *App) Start() <-chan struct{} {
	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer stop()

		<-sigCtx.Done()
		slog.Info("termination signal received")
	}()

	return done
}

// Stop drains in-flight requests first, then closes the remaining resources
// in parallel. Every closer runs even if another one fails.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.closerFn[closerHTTPServer](ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", closerHTTPServer, "error", err)
	}

	for name, closer := range a.closerFn {
		if name == closerHTTPServer {
			continue
		}
		a.goroutine.Go(ctx, func(ctx context.Context) error {
			if err := closer(ctx); err != nil {
				slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
				return err
			}
			slog.InfoContext(ctx, "resource closed", "name", name)
			return nil
		})
	}

	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error while closing resources", "error", err)
	}
	slog.InfoContext(ctx, "application gracefully shutdown")
}
