// Package pkglog configures the process-wide slog logger.
//
// Records are written as JSON to stdout. The context handler copies the
// request correlation ID and, once an upload has been assigned one, the
// upload ID onto every record logged with a context.
package pkglog
