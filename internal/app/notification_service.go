package app

import (
	"context"
	"log/slog"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that NotificationService implements ports.NotificationService.
var _ ports.NotificationService = (*NotificationService)(nil)

// NotificationService implements ports.NotificationService.
type NotificationService struct {
	store  ports.Store
	logger *slog.Logger
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(store ports.Store, logger *slog.Logger) *NotificationService {
	return &NotificationService{store: store, logger: orDiscard(logger)}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID idx.ID) ([]notification.Notification, error) {
	notes, err := s.store.Notifications().FindByUserID(ctx, userID)
	if err != nil {
		logFailure(ctx, s.logger, "ListForUser", err, slog.String("user_id", userID.String()))
		return nil, err
	}
	return notes, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID idx.ID) error {
	if err := s.store.Notifications().MarkRead(ctx, id, userID); err != nil {
		logFailure(ctx, s.logger, "MarkRead", err, slog.String("id", id.String()))
		return err
	}
	return nil
}
