package ports

import (
	"context"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// Notifier delivers a persisted notification to an external channel.
// Implemented by the webhook adapter (or a no-op when delivery is disabled);
// called by the application layer after the producing transaction commits.
type Notifier interface {
	// Notify delivers n. Returns domain.ErrUnavailable when the channel is
	// unreachable or its circuit breaker is open.
	Notify(ctx context.Context, n notification.Notification) error
}

// AccessToken is a signed bearer token and its expiry.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer tokens for authenticated users.
type TokenService interface {
	// Issue signs a token whose subject is the user's id.
	Issue(u *user.User, roleName string) (AccessToken, error)

	// Verify checks signature, issuer, and expiry and returns the subject.
	// Returns domain.ErrUnauthenticated for any invalid token.
	Verify(raw string) (idx.ID, error)
}
