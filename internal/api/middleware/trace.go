package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
)

// TraceMiddleware attaches a trace ID and a trace-scoped logger to every
// request. Apply it first so every downstream handler can correlate its
// logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
