package middleware

import (
	"fmt"
	"net/http"

	"github.com/campuskart/campuskart-backend/api/responses"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

// Recoverer converts handler panics into a 500 response instead of tearing
// down the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				cause := recover()
				if cause == nil {
					return
				}
				if cause == http.ErrAbortHandler {
					panic(cause)
				}

				err := fmt.Errorf("panic: %v", cause)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic":  cause,
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logg.Error(ctx, "recovered from handler panic", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "handler panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
