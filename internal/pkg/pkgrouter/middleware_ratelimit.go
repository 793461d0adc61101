package pkgrouter

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once l has no tokens left. Retry-After
// tells the client when the next token is due.
func RateLimit(l *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := l.Reserve()
			if delay := res.Delay(); delay > 0 || !res.OK() {
				res.Cancel()

				secs := 1
				if res.OK() {
					secs = max(int(math.Ceil(delay.Seconds())), 1)
				}
				slog.WarnContext(r.Context(), "request rate limited", "route", MatchedRoute(r), "retry_after_s", secs)

				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeJSON(w, errorResponse{Message: "too many requests, retry later"}, http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Burst()))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(int(l.Tokens()), 0)))

			next.ServeHTTP(w, r)
		})
	}
}
