package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that CommentService implements ports.CommentService.
var _ ports.CommentService = (*CommentService)(nil)

// CommentService implements ports.CommentService.
type CommentService struct {
	store  ports.Store
	now    Clock
	logger *slog.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(store ports.Store, logger *slog.Logger) *CommentService {
	return &CommentService{store: store, now: utcNow, logger: orDiscard(logger)}
}

// AddComment attaches a comment by authorID to the task.
func (s *CommentService) AddComment(ctx context.Context, taskID idx.ID, text string, authorID idx.ID) (*comment.Comment, error) {
	s.logger.InfoContext(ctx, "adding comment", slog.String("task_id", taskID.String()))

	if err := comment.ValidateText(text); err != nil {
		return nil, err
	}

	created := newComment(taskID, authorID, text, s.now())
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		if _, err := tx.Tasks().FindByID(ctx, taskID); err != nil {
			return err
		}
		if _, err := tx.Users().FindByID(ctx, authorID); err != nil {
			return fmt.Errorf("loading author %s: %w", authorID, err)
		}
		return tx.Comments().Create(ctx, created)
	})
	if err != nil {
		logFailure(ctx, s.logger, "AddComment", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	return created, nil
}

// EditComment replaces the text of a comment. Only its author may edit.
func (s *CommentService) EditComment(ctx context.Context, commentID idx.ID, text string, executorID idx.ID) (*comment.Comment, error) {
	s.logger.InfoContext(ctx, "editing comment", slog.String("comment_id", commentID.String()))

	if err := comment.ValidateText(text); err != nil {
		return nil, err
	}

	var updated *comment.Comment
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		c, err := tx.Comments().FindByID(ctx, commentID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanEditComment(actor, c) {
			return forbidden("edit this comment")
		}

		c.Text = text
		c.UpdatedAt = s.now()
		if err := tx.Comments().Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "EditComment", err, slog.String("comment_id", commentID.String()))
		return nil, err
	}
	return updated, nil
}

// DeleteComment removes a comment. Allowed for its author or the manager of
// the task's project.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, executorID idx.ID) error {
	s.logger.InfoContext(ctx, "deleting comment", slog.String("comment_id", commentID.String()))

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		c, err := tx.Comments().FindByID(ctx, commentID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		t, err := tx.Tasks().FindByID(ctx, c.TaskID)
		if err != nil {
			return fmt.Errorf("loading task: %w", err)
		}
		p, err := tx.Projects().FindByID(ctx, t.ProjectID)
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}
		if !access.CanDeleteComment(actor, c, p) {
			return forbidden("delete this comment")
		}
		return tx.Comments().DeleteByID(ctx, commentID)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteComment", err, slog.String("comment_id", commentID.String()))
		return err
	}
	return nil
}

// ListByTask returns the task's comments oldest first.
func (s *CommentService) ListByTask(ctx context.Context, taskID idx.ID) ([]comment.Comment, error) {
	if _, err := s.store.Tasks().FindByID(ctx, taskID); err != nil {
		logFailure(ctx, s.logger, "ListByTask", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	comments, err := s.store.Comments().FindByTaskIDOrderByCreatedAtAsc(ctx, taskID)
	if err != nil {
		logFailure(ctx, s.logger, "ListByTask", err, slog.String("task_id", taskID.String()))
		return nil, err
	}
	return comments, nil
}
