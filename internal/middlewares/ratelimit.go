package middlewares

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
)

// RateLimitMiddleware rejects requests beyond the limiter budget with 429.
// It guards the routes that call the completion provider.
func RateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.FromContext(r.Context()).Warnw("rate limit exceeded", "uri", r.RequestURI)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter(limiter)))
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfter(limiter *rate.Limiter) int {
	if limiter.Limit() <= 0 {
		return 1
	}
	seconds := int(1 / float64(limiter.Limit()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
