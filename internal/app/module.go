package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/gocompare/internal/compare"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.compare.enabled") {
		closer, err := compare.New(compare.Dependency{
			Config:  a.config,
			Router:  a.router,
			Context: a.ctx,
			Blobs:   a.blobs,
			ID:      a.uuid,
			NumID:   a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module compare", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Record Store"] = closer
		}
	}
}
