package pkglog

import "context"

type (
	correlationIDKey struct{}
	uploadIDKey      struct{}
)

// GetCorrelationID returns the request correlation ID, or "" when the context
// did not pass through the correlation middleware.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationIDKey{}).(string)
	return cid
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// GetUploadID returns the upload the context is working on, or "".
func GetUploadID(ctx context.Context) string {
	id, _ := ctx.Value(uploadIDKey{}).(string)
	return id
}

// SetUploadID tags the context so every record logged with it carries upload_id.
func SetUploadID(ctx context.Context, uploadID string) context.Context {
	return context.WithValue(ctx, uploadIDKey{}, uploadID)
}
