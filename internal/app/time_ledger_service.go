package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that TimeLedgerService implements ports.TimeLedgerService.
var _ ports.TimeLedgerService = (*TimeLedgerService)(nil)

// TimeLedgerService implements ports.TimeLedgerService.
type TimeLedgerService struct {
	store  ports.Store
	now    Clock
	logger *slog.Logger
}

// NewTimeLedgerService creates a TimeLedgerService.
func NewTimeLedgerService(store ports.Store, logger *slog.Logger) *TimeLedgerService {
	return &TimeLedgerService{store: store, now: utcNow, logger: orDiscard(logger)}
}

// LogHours records hours worked on a task by its responsible.
func (s *TimeLedgerService) LogHours(ctx context.Context, taskID idx.ID, hours decimal.Decimal, date time.Time, userID idx.ID) (*timelog.Entry, error) {
	s.logger.InfoContext(ctx, "logging hours",
		slog.String("task_id", taskID.String()),
		slog.String("hours", hours.String()),
	)

	if err := timelog.ValidateHours(hours, date); err != nil {
		return nil, err
	}

	now := s.now()
	entry := &timelog.Entry{
		ID:        idx.NewAt(now),
		TaskID:    taskID,
		UserID:    userID,
		Hours:     hours,
		LogDate:   timelog.Day(date),
		CreatedAt: now,
	}

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		t, err := tx.Tasks().FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !access.CanLogHours(actor, t) {
			return forbidden("log hours on a task you are not responsible for")
		}
		return tx.HourEntries().Create(ctx, entry)
	})
	if err != nil {
		logFailure(ctx, s.logger, "LogHours", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	return entry, nil
}

// EditEntry changes an entry's hours and date. Only its author may edit.
func (s *TimeLedgerService) EditEntry(ctx context.Context, entryID idx.ID, hours decimal.Decimal, date time.Time, executorID idx.ID) (*timelog.Entry, error) {
	s.logger.InfoContext(ctx, "editing hour entry", slog.String("entry_id", entryID.String()))

	if err := timelog.ValidateHours(hours, date); err != nil {
		return nil, err
	}

	var updated *timelog.Entry
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		e, err := tx.HourEntries().FindByID(ctx, entryID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanEditEntry(actor, e) {
			return forbidden("edit this hour entry")
		}

		e.Hours = hours
		e.LogDate = timelog.Day(date)
		if err := tx.HourEntries().Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "EditEntry", err, slog.String("entry_id", entryID.String()))
		return nil, err
	}
	return updated, nil
}

// DeleteEntry removes an entry. Allowed for its author or the manager of the
// task's project.
func (s *TimeLedgerService) DeleteEntry(ctx context.Context, entryID, executorID idx.ID) error {
	s.logger.InfoContext(ctx, "deleting hour entry", slog.String("entry_id", entryID.String()))

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		e, err := tx.HourEntries().FindByID(ctx, entryID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		t, err := tx.Tasks().FindByID(ctx, e.TaskID)
		if err != nil {
			return fmt.Errorf("loading task: %w", err)
		}
		p, err := tx.Projects().FindByID(ctx, t.ProjectID)
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}
		if !access.CanDeleteEntry(actor, e, p) {
			return forbidden("delete this hour entry")
		}
		return tx.HourEntries().DeleteByID(ctx, entryID)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteEntry", err, slog.String("entry_id", entryID.String()))
		return err
	}
	return nil
}

// TotalHoursForTask sums the hours logged on a task.
func (s *TimeLedgerService) TotalHoursForTask(ctx context.Context, taskID idx.ID) (decimal.Decimal, error) {
	if _, err := s.store.Tasks().FindByID(ctx, taskID); err != nil {
		logFailure(ctx, s.logger, "TotalHoursForTask", err, slog.String("task_id", taskID.String()))
		return decimal.Zero, err
	}
	total, err := s.store.HourEntries().SumHoursByTaskID(ctx, taskID)
	if err != nil {
		logFailure(ctx, s.logger, "TotalHoursForTask", err, slog.String("task_id", taskID.String()))
		return decimal.Zero, err
	}
	return total, nil
}

// TotalHoursForProject sums the hours logged across a project's tasks.
func (s *TimeLedgerService) TotalHoursForProject(ctx context.Context, projectID idx.ID) (decimal.Decimal, error) {
	if _, err := s.store.Projects().FindByID(ctx, projectID); err != nil {
		logFailure(ctx, s.logger, "TotalHoursForProject", err, slog.String("project_id", projectID.String()))
		return decimal.Zero, err
	}
	total, err := s.store.HourEntries().SumHoursByProjectID(ctx, projectID)
	if err != nil {
		logFailure(ctx, s.logger, "TotalHoursForProject", err, slog.String("project_id", projectID.String()))
		return decimal.Zero, err
	}
	return total, nil
}

// ListByTask returns a task's entries ordered by log date.
func (s *TimeLedgerService) ListByTask(ctx context.Context, taskID idx.ID) ([]timelog.Entry, error) {
	if _, err := s.store.Tasks().FindByID(ctx, taskID); err != nil {
		logFailure(ctx, s.logger, "ListByTask", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	entries, err := s.store.HourEntries().FindByTaskID(ctx, taskID)
	if err != nil {
		logFailure(ctx, s.logger, "ListByTask", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	return entries, nil
}

// ListByUser returns a user's entries whose log date falls in r.
func (s *TimeLedgerService) ListByUser(ctx context.Context, userID idx.ID, r timelog.Range) ([]timelog.Entry, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	entries, err := s.store.HourEntries().FindByUserAndDateRange(ctx, userID, timelog.Day(r.From), timelog.Day(r.To))
	if err != nil {
		logFailure(ctx, s.logger, "ListByUser", err, slog.String("user_id", userID.String()))
		return nil, err
	}
	return entries, nil
}
