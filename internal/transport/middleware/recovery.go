package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a JSON 500 and logs it with the
// request and tenant ids. http.ErrAbortHandler is re-raised so net/http
// can abort the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				attrs := []any{
					slog.Any("panic", rec),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if id, ok := ctxutil.BusinessIDFromCtx(ctx); ok {
					attrs = append(attrs, slog.String("business_id", id.String()))
				}
				attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				logger.ErrorContext(ctx, "panic recovered", attrs...)

				writeError(w, http.StatusInternalServerError, "internal error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
