package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/campuskart/campuskart-backend/pkg/logger"
)

// RequestIDHeader carries the correlation id. An inbound value is trusted and
// echoed back; otherwise a fresh uuid is minted.
const RequestIDHeader = "X-Request-Id"

// RequestID tags every request and its log entries with a correlation id.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
