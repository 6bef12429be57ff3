package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware caps every request at the MIDDLEWARE_REQUEST_TIMEOUT budget.
// Handlers and repositories see the deadline through the request context.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() is ongoingCtx from BaseContext
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
