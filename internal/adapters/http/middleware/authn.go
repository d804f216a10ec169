package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/logging"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

const headerAuthorization = "Authorization"

// userIDKey is the context key for the authenticated user's id.
type userIDKey struct{}

// WithUserID returns a new context carrying the authenticated user's id.
func WithUserID(ctx context.Context, id idx.ID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext returns the authenticated user's id. The second value
// is false when the request did not pass through Authenticate.
func UserIDFromContext(ctx context.Context) (idx.ID, bool) {
	id, ok := ctx.Value(userIDKey{}).(idx.ID)
	return id, ok && !id.IsZero()
}

// Authenticate returns middleware that requires a valid bearer token. The
// token subject is stored via WithUserID, added to the request logger as
// user_id, and reported to Logging for the access log. Missing or invalid
// tokens get a 401 problem response.
func Authenticate(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := bearerToken(r)
			if raw == "" {
				dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
				return
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				logging.FromContext(ctx).InfoContext(ctx, "rejected bearer token",
					slog.String("error", err.Error()),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = WithUserID(ctx, userID)
			noteUser(ctx, userID)
			trace.SpanFromContext(ctx).SetAttributes(attribute.String("enduser.id", userID.String()))
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(
				slog.String("user_id", userID.String()),
			))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is case-insensitive.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get(headerAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
