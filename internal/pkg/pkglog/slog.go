package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

//nolint:gochecknoglobals // shared by the default handler
var level = new(slog.LevelVar)

// SetLevel changes the minimum level of the default logger at runtime.
//
// Accepted values are debug, info, warn and error; anything else means info.
func SetLevel(name string) {
	level.Set(ParseLevel(name))
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogging installs NewHandler(os.Stdout) as the default slog logger.
func InitLogging() {
	slog.SetDefault(slog.New(NewHandler(os.Stdout)))
}

// NewHandler returns the JSON handler used by the service. Time and level
// are renamed to "ts" and "severity", and the source is reduced to an
// "internal/..." file:line pair.
func NewHandler(w io.Writer) slog.Handler {
	return &contextHandler{Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	})}
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		_, rel, found := strings.Cut(src.File, "/internal/")
		if !found {
			return slog.Attr{}
		}
		return slog.String("file", fmt.Sprintf("internal/%s:%d", rel, src.Line))
	}
	return a
}

// contextHandler copies request scoped IDs from the context onto each record.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cID := GetCorrelationID(ctx); cID != "" {
		r.AddAttrs(slog.String("_cID", cID))
	}
	if uploadID := GetUploadID(ctx); uploadID != "" {
		r.AddAttrs(slog.String("upload_id", uploadID))
	}
	r.AddAttrs(slog.String("service", "gocompare"))

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
