package webhook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/httpclient"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// NotificationsPath is the channel endpoint notifications are posted to.
const NotificationsPath = "/notifications"

// Compile-time interface checks.
var (
	_ ports.Notifier = (*Notifier)(nil)
	_ ports.Notifier = Noop{}
)

// Notifier posts each notification to {base_url}/notifications.
type Notifier struct {
	req    *Requester
	logger *slog.Logger
}

// NewNotifier creates a Notifier that sends through client.
func NewNotifier(client *httpclient.Client, logger *slog.Logger) *Notifier {
	return &Notifier{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Notify delivers n, keyed by its ID so a retried delivery is recognized as
// the same notification. Returns domain.ErrUnavailable when the channel is
// down or the circuit breaker is open.
func (c *Notifier) Notify(ctx context.Context, n notification.Notification) error {
	if err := c.req.Post(ctx, NotificationsPath, n.ID.String(), ToNotificationDTO(n)); err != nil {
		return fmt.Errorf("delivering notification %s: %w", n.ID, err)
	}
	c.logger.DebugContext(ctx, "notification delivered",
		slog.String("notification_id", n.ID.String()),
		slog.String("kind", string(n.Kind)),
	)
	return nil
}

// Noop discards notifications. It is wired when the channel is disabled;
// notifications then exist only in-app.
type Noop struct{}

// Notify does nothing.
func (Noop) Notify(context.Context, notification.Notification) error { return nil }
