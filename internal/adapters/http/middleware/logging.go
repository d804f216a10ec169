package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/logging"
)

// accessKey is the context key for the request's *accessRecord.
type accessKey struct{}

// accessRecord collects facts that inner middleware learn after Logging has
// started the request. Authenticate runs inside Timeout, on another
// goroutine, so fields are guarded.
type accessRecord struct {
	mu     sync.Mutex
	userID idx.ID
}

// noteUser records the authenticated user for the access log. It is a no-op
// when the request did not pass through Logging.
func noteUser(ctx context.Context, id idx.ID) {
	if rec, ok := ctx.Value(accessKey{}).(*accessRecord); ok {
		rec.mu.Lock()
		rec.userID = id
		rec.mu.Unlock()
	}
}

func (rec *accessRecord) user() idx.ID {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.userID
}

// Logging returns middleware that writes the access log. It stores a child
// logger carrying request_id and correlation_id in the context for handlers.
// The completion line adds the matched route pattern, the status, the
// response size, the duration, and user_id once Authenticate has run.
// 5xx completions log at error level and 4xx at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			rec := &accessRecord{}
			ctx = context.WithValue(ctx, accessKey{}, rec)

			child.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.GroupAttrs("headers", RedactHeaders(r.Header)...),
			)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			if uid := rec.user(); !uid.IsZero() {
				attrs = append(attrs, slog.String("user_id", uid.String()))
			}

			child.LogAttrs(ctx, statusLevel(rw.statusCode), "request completed", attrs...)
		})
	}
}

// statusLevel maps a response status to the access-log level.
func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// routePattern returns chi's matched pattern, e.g. "/api/v1/tasks/{taskID}",
// or "" outside a chi router or when nothing matched.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
