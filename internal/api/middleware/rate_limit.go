package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// RateLimit ограничивает общее число запросов (token bucket)
func RateLimit(rps float64, burst int, logger Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("%s %s - rate limit exceeded (request_id=%s)",
					r.Method, r.URL.Path, RequestIDFromContext(r.Context()))
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
