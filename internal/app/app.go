// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every mutating operation runs as one unit of work inside ports.Store.WithTx:
// permission checks, writes, audit comments, and notification rows commit or
// roll back together. Notifications are delivered to the external channel only
// after the transaction commits.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Clock returns the current time. Services stamp entities with it.
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// loadActor resolves the acting user and their role inside the caller's unit
// of work. A missing user wraps both domain.ErrNotFound and
// domain.ErrUnauthenticated: a still-valid token may outlive its account.
func loadActor(ctx context.Context, repos ports.Repositories, userID idx.ID) (access.Actor, error) {
	u, err := repos.Users().FindByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return access.Actor{}, fmt.Errorf("%w: acting user %s: %w", domain.ErrUnauthenticated, userID, err)
	}
	if err != nil {
		return access.Actor{}, fmt.Errorf("loading user %s: %w", userID, err)
	}
	r, err := repos.Roles().FindByID(ctx, u.RoleID)
	if err != nil {
		return access.Actor{}, fmt.Errorf("loading role of user %s: %w", userID, err)
	}
	return access.Actor{User: *u, Role: *r}, nil
}

func forbidden(action string) error {
	return fmt.Errorf("%w: not allowed to %s", domain.ErrForbidden, action)
}

// logFailure records a failed operation. Domain outcomes (not found,
// forbidden, validation, conflicts) log at warn; everything else at error.
func logFailure(ctx context.Context, logger *slog.Logger, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrIllegalState),
		errors.Is(err, domain.ErrUnauthenticated):
		level = slog.LevelWarn
	}

	all := make([]slog.Attr, 0, len(attrs)+2)
	all = append(all, slog.String("operation", operation))
	all = append(all, attrs...)
	all = append(all, slog.Any("error", err))
	logger.LogAttrs(ctx, level, "failed to "+humanize(operation), all...)
}

// humanize turns "MoveToStage" into "move to stage".
func humanize(operation string) string {
	out := make([]byte, 0, len(operation)+4)
	for i := 0; i < len(operation); i++ {
		c := operation[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				out = append(out, ' ')
			}
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
