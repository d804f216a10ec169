package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/telemetry"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Dispatcher delivers committed notifications through a ports.Notifier.
// Delivery failures are logged and counted but never surface to the caller:
// the notification row is already persisted and readable in-app.
type Dispatcher struct {
	notifier ports.Notifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher. metrics may be nil.
func NewDispatcher(notifier ports.Notifier, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		metrics:  metrics,
		logger:   orDiscard(logger),
	}
}

// Dispatch delivers each notification in order. Call it only after the
// producing transaction has committed.
func (d *Dispatcher) Dispatch(ctx context.Context, notes ...notification.Notification) {
	if d == nil {
		return
	}
	for _, n := range notes {
		result := "success"
		if err := d.notifier.Notify(ctx, n); err != nil {
			result = "failure"
			d.logger.WarnContext(ctx, "notification delivery failed",
				slog.String("notification_id", n.ID.String()),
				slog.String("user_id", n.UserID.String()),
				slog.String("kind", string(n.Kind)),
				slog.Any("error", err),
			)
		}
		if d.metrics != nil {
			d.metrics.NotificationDeliveryTotal.Add(ctx, 1, metric.WithAttributes(
				telemetry.AttrNotificationKind.String(string(n.Kind)),
				telemetry.AttrResult.String(result),
			))
		}
	}
}
