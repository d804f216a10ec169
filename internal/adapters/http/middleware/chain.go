package middleware

import "net/http"

// Chain composes middleware so the first argument is outermost. Nil entries
// are skipped, which lets callers leave out stages that configuration
// disables (tracing when telemetry is off):
//
//	Chain(Recovery(l), RequestID(), tracing, Logging(l))(router)
//
// is Recovery(RequestID(Logging(router))) when tracing is nil.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
