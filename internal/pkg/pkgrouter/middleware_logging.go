package pkgrouter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const maxLoggedBodyBytes = 64 * 1024

//nolint:gochecknoglobals // read-only lookup
var sensitiveKeys = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"set-cookie":          {},
	"x-api-key":           {},
	"access_key":          {},
	"secret_key":          {},
	"account_key":         {},
}

func isSensitive(key string) bool {
	_, found := sensitiveKeys[strings.ToLower(key)]
	return found
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, "***")
		}
	}
	return result
}

// maskData walks decoded JSON and replaces values of sensitive keys.
func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if isSensitive(k) {
				masked[k] = "***"
				continue
			}
			masked[k] = maskData(inner)
		}
		return masked
	case []any:
		masked := make([]any, len(val))
		for i, inner := range val {
			masked[i] = maskData(inner)
		}
		return masked
	default:
		return v
	}
}

func isMultipart(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "multipart/")
}

// describeBody turns a captured body into something safe to log. JSON is
// decoded and masked, multipart and CSV payloads are replaced by a marker,
// and other text is truncated.
func describeBody(contentType string, body []byte, truncated bool) any {
	ct := strings.ToLower(contentType)
	switch {
	case len(body) == 0:
		return nil
	case isMultipart(ct):
		return "<multipart body omitted>"
	case strings.HasPrefix(ct, "text/csv"):
		return "<csv body omitted>"
	}

	var out any
	var decoded any
	switch {
	case json.Unmarshal(body, &decoded) == nil:
		out = maskData(decoded)
	case !utf8.Valid(body):
		return "<binary body omitted>"
	case len(body) > maxLoggedBodyBytes:
		out, truncated = string(body[:maxLoggedBodyBytes]), true
	default:
		out = string(body)
	}

	if truncated {
		return map[string]any{"body": out, "truncated": true}
	}
	return out
}

// responseRecorder tracks status and size, and keeps the first
// maxLoggedBodyBytes of the body for logging.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	body   bytes.Buffer
	capped bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if room := maxLoggedBodyBytes - w.body.Len(); room < len(p) {
		w.body.Write(p[:max(room, 0)])
		w.capped = true
	} else {
		w.body.Write(p)
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *responseRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type readCloser struct {
	io.Reader
	io.Closer
}

// peekBody reads up to maxLoggedBodyBytes+1 bytes for logging and puts them
// back in front of the unread remainder. Multipart bodies are not touched so
// the endpoint can enforce its own size limit.
func peekBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody || isMultipart(r.Header.Get("Content-Type")) {
		return nil
	}

	//nolint:errcheck // best effort for logging only
	head, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1))
	r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(head), r.Body), Closer: r.Body}

	return head
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := MatchedRoute(r)
		reqType := r.Header.Get("Content-Type")

		reqBody := describeBody(reqType, peekBody(r), false)
		if isMultipart(reqType) {
			reqBody = "<multipart body omitted>"
		}

		slog.InfoContext(r.Context(), "request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"headers", maskHeaders(r.Header),
			"body", reqBody,
		)

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		slog.InfoContext(r.Context(), "response sent",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"body", describeBody(rec.Header().Get("Content-Type"), rec.body.Bytes(), rec.capped),
		)
	})
}
