package pkgrouter

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter stored by httprouter, such as upload_id.
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// MatchedRoute returns the registered pattern that served r, for example
// "/uploads/:upload_id". It falls back to the raw path for unmatched requests.
func MatchedRoute(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}
