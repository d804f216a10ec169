package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/telemetry"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService: task creation, stage
// transitions, responsibility, and the task cascade.
type TaskService struct {
	store      ports.Store
	dispatcher *Dispatcher
	metrics    *telemetry.Metrics
	now        Clock
	logger     *slog.Logger
}

// NewTaskService creates a TaskService. dispatcher and metrics may be nil.
func NewTaskService(store ports.Store, dispatcher *Dispatcher, metrics *telemetry.Metrics, logger *slog.Logger) *TaskService {
	return &TaskService{
		store:      store,
		dispatcher: dispatcher,
		metrics:    metrics,
		now:        utcNow,
		logger:     orDiscard(logger),
	}
}

// CreateTask places a new task on the first stage of the project's workflow.
func (s *TaskService) CreateTask(ctx context.Context, draft task.Draft, creatorID idx.ID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.String("project_id", draft.ProjectID.String()),
		slog.String("creator_id", creatorID.String()),
	)

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	created := &task.Task{
		ID:            idx.NewAt(now),
		ProjectID:     draft.ProjectID,
		Title:         strings.TrimSpace(draft.Title),
		Description:   draft.Description,
		ResponsibleID: draft.ResponsibleID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var notes []notification.Notification
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects().FindByID(ctx, draft.ProjectID)
		if err != nil {
			return fmt.Errorf("loading project %s: %w", draft.ProjectID, err)
		}
		creator, err := loadActor(ctx, tx, creatorID)
		if err != nil {
			return err
		}
		if draft.ResponsibleID != nil {
			if _, err := tx.Users().FindByID(ctx, *draft.ResponsibleID); err != nil {
				return fmt.Errorf("loading responsible %s: %w", *draft.ResponsibleID, err)
			}
		}
		if !p.HasWorkflow() {
			return fmt.Errorf("%w: project has no workflow", domain.ErrIllegalState)
		}
		first, err := tx.Workflows().FindFirstStage(ctx, *p.WorkflowID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: workflow has no stages", domain.ErrIllegalState)
		}
		if err != nil {
			return fmt.Errorf("loading first stage: %w", err)
		}
		if !access.CanCreateTask(creator) {
			return forbidden("create tasks")
		}

		created.StageID = first.ID
		if err := tx.Tasks().Create(ctx, created); err != nil {
			return err
		}

		if created.ResponsibleID != nil && *created.ResponsibleID != creatorID {
			n := notification.Assigned(*created.ResponsibleID, created.ID, created.Title, now)
			if err := tx.Notifications().Create(ctx, &n); err != nil {
				return fmt.Errorf("recording notification: %w", err)
			}
			notes = append(notes, n)
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "CreateTask", err, slog.String("project_id", draft.ProjectID.String()))
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, notes...)
	return created, nil
}

// GetTask returns a task by ID.
func (s *TaskService) GetTask(ctx context.Context, id idx.ID) (*task.Task, error) {
	t, err := s.store.Tasks().FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "GetTask", err, slog.String("id", id.String()))
		return nil, err
	}
	return t, nil
}

// ListByProject returns the tasks of an existing project.
func (s *TaskService) ListByProject(ctx context.Context, projectID idx.ID) ([]task.Task, error) {
	if _, err := s.store.Projects().FindByID(ctx, projectID); err != nil {
		logFailure(ctx, s.logger, "ListByProject", err, slog.String("project_id", projectID.String()))
		return nil, err
	}
	tasks, err := s.store.Tasks().FindByProjectID(ctx, projectID)
	if err != nil {
		logFailure(ctx, s.logger, "ListByProject", err, slog.String("project_id", projectID.String()))
		return nil, err
	}
	return tasks, nil
}

// ListByResponsible returns the tasks a user is responsible for.
func (s *TaskService) ListByResponsible(ctx context.Context, userID idx.ID) ([]task.Task, error) {
	tasks, err := s.store.Tasks().FindByResponsibleID(ctx, userID)
	if err != nil {
		logFailure(ctx, s.logger, "ListByResponsible", err, slog.String("user_id", userID.String()))
		return nil, err
	}
	return tasks, nil
}

// MoveToStage moves the task to another stage of its project's workflow and
// records the move as a comment authored by the executor.
func (s *TaskService) MoveToStage(ctx context.Context, taskID, stageID, executorID idx.ID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "moving task",
		slog.String("task_id", taskID.String()),
		slog.String("stage_id", stageID.String()),
	)

	var (
		moved      *task.Task
		completion bool
		notes      []notification.Notification
	)
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		t, err := tx.Tasks().FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		target, err := tx.Workflows().FindStageByID(ctx, stageID)
		if err != nil {
			return fmt.Errorf("loading stage %s: %w", stageID, err)
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		p, err := tx.Projects().FindByID(ctx, t.ProjectID)
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}
		if !idx.Equal(p.WorkflowID, target.WorkflowID) {
			return fmt.Errorf("%w: stage does not belong to the project's workflow", domain.ErrIllegalState)
		}
		if !access.CanMoveTask(actor, t, p) {
			return forbidden("move this task")
		}

		current, err := tx.Workflows().FindStageByID(ctx, t.StageID)
		if err != nil {
			return fmt.Errorf("loading current stage: %w", err)
		}

		now := s.now()
		t.StageID = target.ID
		t.UpdatedAt = now
		if target.IsCompletion() {
			completion = true
			t.CompletedAt = &now
		}
		if err := tx.Tasks().Update(ctx, t); err != nil {
			return err
		}

		note := newComment(t.ID, executorID, task.MoveNote(current.Name, target.Name), now)
		if err := tx.Comments().Create(ctx, note); err != nil {
			return fmt.Errorf("recording move: %w", err)
		}

		if t.ResponsibleID != nil && *t.ResponsibleID != executorID {
			n := notification.Moved(*t.ResponsibleID, t.ID, t.Title, current.Name, target.Name, now)
			if err := tx.Notifications().Create(ctx, &n); err != nil {
				return fmt.Errorf("recording notification: %w", err)
			}
			notes = append(notes, n)
		}

		moved = t
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "MoveToStage", err, slog.String("task_id", taskID.String()))
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.TaskTransitionTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrStageCompletion.Bool(completion),
		))
	}
	s.dispatcher.Dispatch(ctx, notes...)
	return moved, nil
}

// SetResponsible assigns the task to a user, or clears it when
// responsibleID is nil.
func (s *TaskService) SetResponsible(ctx context.Context, taskID idx.ID, responsibleID *idx.ID, executorID idx.ID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "setting responsible", slog.String("task_id", taskID.String()))

	var (
		updated *task.Task
		notes   []notification.Notification
	)
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		t, err := tx.Tasks().FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		p, err := tx.Projects().FindByID(ctx, t.ProjectID)
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}
		if !access.CanSetResponsible(actor, p) {
			return forbidden("assign this task")
		}

		name := ""
		if responsibleID != nil {
			u, err := tx.Users().FindByID(ctx, *responsibleID)
			if err != nil {
				return fmt.Errorf("loading responsible %s: %w", *responsibleID, err)
			}
			name = u.Name
		}

		now := s.now()
		t.ResponsibleID = responsibleID
		t.UpdatedAt = now
		if err := tx.Tasks().Update(ctx, t); err != nil {
			return err
		}

		note := newComment(t.ID, executorID, task.ResponsibleNote(name), now)
		if err := tx.Comments().Create(ctx, note); err != nil {
			return fmt.Errorf("recording assignment: %w", err)
		}

		if responsibleID != nil {
			n := notification.Assigned(*responsibleID, t.ID, t.Title, now)
			if err := tx.Notifications().Create(ctx, &n); err != nil {
				return fmt.Errorf("recording notification: %w", err)
			}
			notes = append(notes, n)
		}

		updated = t
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "SetResponsible", err, slog.String("task_id", taskID.String()))
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, notes...)
	return updated, nil
}

// EditTask applies title and description changes. Any existing user may
// edit.
func (s *TaskService) EditTask(ctx context.Context, taskID idx.ID, upd task.Update, executorID idx.ID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "editing task", slog.String("task_id", taskID.String()))

	var updated *task.Task
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		t, err := tx.Tasks().FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if _, err := tx.Users().FindByID(ctx, executorID); err != nil {
			return fmt.Errorf("loading user %s: %w", executorID, err)
		}

		upd.Apply(t)
		t.UpdatedAt = s.now()
		if err := tx.Tasks().Update(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "EditTask", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes the task with its comments and hour entries.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, executorID idx.ID) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", taskID.String()))

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		t, err := tx.Tasks().FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		p, err := tx.Projects().FindByID(ctx, t.ProjectID)
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}
		if !access.CanDeleteTask(actor, t, p) {
			return forbidden("delete this task")
		}
		return deleteTaskCascade(ctx, tx, taskID)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteTask", err, slog.String("task_id", taskID.String()))
		return err
	}
	return nil
}

// deleteTaskCascade removes a task's comments, then its hour entries, then
// the task itself.
func deleteTaskCascade(ctx context.Context, tx ports.Repositories, taskID idx.ID) error {
	if err := tx.Comments().DeleteByTaskID(ctx, taskID); err != nil {
		return fmt.Errorf("deleting comments of task %s: %w", taskID, err)
	}
	if err := tx.HourEntries().DeleteByTaskID(ctx, taskID); err != nil {
		return fmt.Errorf("deleting hours of task %s: %w", taskID, err)
	}
	if err := tx.Tasks().Delete(ctx, taskID); err != nil {
		return fmt.Errorf("deleting task %s: %w", taskID, err)
	}
	return nil
}

func newComment(taskID, authorID idx.ID, text string, at time.Time) *comment.Comment {
	return &comment.Comment{
		ID:        idx.NewAt(at),
		TaskID:    taskID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: at,
		UpdatedAt: at,
	}
}
