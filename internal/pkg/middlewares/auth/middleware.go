package auth

import (
	"context"
	"net/http"

	"truckboard/pkg/logger"
)

// CookieName is the session cookie the middleware reads and the login
// handler sets.
const CookieName = "truckboard_session"

type userIDKey struct{}

// Middleware rejects requests without a valid session cookie and puts
// the authenticated user ID into the request context.
func Middleware(log handlerLogger, sessions sessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				unauthorized(log, w, r)
				return
			}

			claims, err := sessions.Validate(cookie.Value)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
				).Warn("rejected invalid session token")
				unauthorized(log, w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// WithUserID marks the context as authenticated for the given user.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID returns the authenticated user set by Middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

func unauthorized(log handlerLogger, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_, err := w.Write([]byte(`{"error":"authentication required"}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write unauthorized response")
	}
}
