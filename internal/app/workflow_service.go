package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that WorkflowService implements ports.WorkflowService.
var _ ports.WorkflowService = (*WorkflowService)(nil)

// WorkflowService implements ports.WorkflowService.
type WorkflowService struct {
	store  ports.Store
	now    Clock
	logger *slog.Logger
}

// NewWorkflowService creates a WorkflowService.
func NewWorkflowService(store ports.Store, logger *slog.Logger) *WorkflowService {
	return &WorkflowService{store: store, now: utcNow, logger: orDiscard(logger)}
}

// ListWorkflows returns all workflows with their stages.
func (s *WorkflowService) ListWorkflows(ctx context.Context) ([]workflow.Workflow, error) {
	workflows, err := s.store.Workflows().List(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "ListWorkflows", err)
		return nil, err
	}
	return workflows, nil
}

// GetWorkflow returns a workflow with its stages ordered ascending.
func (s *WorkflowService) GetWorkflow(ctx context.Context, id idx.ID) (*workflow.Workflow, error) {
	wf, err := s.store.Workflows().FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "GetWorkflow", err, slog.String("id", id.String()))
		return nil, err
	}
	return wf, nil
}

// CreateWorkflow stores a workflow and its initial stages.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, wf *workflow.Workflow, executorID idx.ID) (*workflow.Workflow, error) {
	s.logger.InfoContext(ctx, "creating workflow",
		slog.String("name", wf.Name),
		slog.Int("stages", len(wf.Stages)),
	)

	if err := wf.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	created := &workflow.Workflow{
		ID:        idx.NewAt(now),
		Name:      strings.TrimSpace(wf.Name),
		Stages:    make([]workflow.Stage, len(wf.Stages)),
		CreatedAt: now,
	}
	for i, st := range wf.Stages {
		created.Stages[i] = workflow.Stage{
			ID:    idx.NewAt(now),
			Name:  strings.TrimSpace(st.Name),
			Order: st.Order,
		}
	}
	created.SortStages()

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanManageWorkflows(actor) {
			return forbidden("manage workflows")
		}
		return tx.Workflows().Create(ctx, created)
	})
	if err != nil {
		logFailure(ctx, s.logger, "CreateWorkflow", err)
		return nil, err
	}
	return created, nil
}

// AddStage appends a stage to an existing workflow.
func (s *WorkflowService) AddStage(ctx context.Context, workflowID idx.ID, stage workflow.Stage, executorID idx.ID) (*workflow.Stage, error) {
	s.logger.InfoContext(ctx, "adding stage",
		slog.String("workflow_id", workflowID.String()),
		slog.Int("order", stage.Order),
	)

	created := &workflow.Stage{
		ID:         idx.NewAt(s.now()),
		WorkflowID: workflowID,
		Name:       strings.TrimSpace(stage.Name),
		Order:      stage.Order,
	}

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanManageWorkflows(actor) {
			return forbidden("manage workflows")
		}
		wf, err := tx.Workflows().FindByID(ctx, workflowID)
		if err != nil {
			return err
		}
		if err := wf.ValidateNewStage(*created); err != nil {
			return err
		}
		return tx.Workflows().CreateStage(ctx, created)
	})
	if err != nil {
		logFailure(ctx, s.logger, "AddStage", err, slog.String("workflow_id", workflowID.String()))
		return nil, err
	}
	return created, nil
}

// DeleteWorkflow removes an unused workflow and its stages.
func (s *WorkflowService) DeleteWorkflow(ctx context.Context, id, executorID idx.ID) error {
	s.logger.InfoContext(ctx, "deleting workflow", slog.String("id", id.String()))

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanManageWorkflows(actor) {
			return forbidden("manage workflows")
		}
		if _, err := tx.Workflows().FindByID(ctx, id); err != nil {
			return err
		}
		inUse, err := tx.Workflows().IsInUse(ctx, id)
		if err != nil {
			return fmt.Errorf("checking workflow usage: %w", err)
		}
		if inUse {
			return fmt.Errorf("%w: workflow is used by a project or task", domain.ErrConflict)
		}
		return tx.Workflows().DeleteByID(ctx, id)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteWorkflow", err, slog.String("id", id.String()))
		return err
	}
	return nil
}
