package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/access"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. It enforces project
// permissions and owns the explicit project cascade.
type ProjectService struct {
	store  ports.Store
	now    Clock
	logger *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(store ports.Store, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		store:  store,
		now:    utcNow,
		logger: orDiscard(logger),
	}
}

// ListProjects returns all projects.
func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")

	projects, err := s.store.Projects().FindAll(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "ListProjects", err)
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id idx.ID) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id.String()))

	p, err := s.store.Projects().FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "GetProject", err, slog.String("id", id.String()))
		return nil, err
	}
	return p, nil
}

// CreateProject creates a project managed by managerID with no workflow.
func (s *ProjectService) CreateProject(ctx context.Context, name, description string, managerID idx.ID) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project",
		slog.String("name", name),
		slog.String("manager_id", managerID.String()),
	)

	now := s.now()
	p := &project.Project{
		ID:          idx.NewAt(now),
		Name:        strings.TrimSpace(name),
		Description: description,
		ManagerID:   managerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		manager, err := loadActor(ctx, tx, managerID)
		if err != nil {
			return err
		}
		if !access.CanCreateProject(manager) {
			return forbidden("create projects")
		}
		return tx.Projects().Create(ctx, p)
	})
	if err != nil {
		logFailure(ctx, s.logger, "CreateProject", err)
		return nil, err
	}
	return p, nil
}

// EditProject applies name and description changes.
func (s *ProjectService) EditProject(ctx context.Context, id idx.ID, upd project.Update, executorID idx.ID) (*project.Project, error) {
	s.logger.InfoContext(ctx, "editing project", slog.String("id", id.String()))

	var updated *project.Project
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects().FindByID(ctx, id)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanEditProject(actor, p) {
			return forbidden("edit this project")
		}

		upd.Apply(p)
		p.UpdatedAt = s.now()
		if err := tx.Projects().Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "EditProject", err, slog.String("id", id.String()))
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes the project after its tasks, and each task's
// comments and hour entries, in one transaction.
func (s *ProjectService) DeleteProject(ctx context.Context, id, executorID idx.ID) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("id", id.String()))

	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects().FindByID(ctx, id)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanDeleteProject(actor, p) {
			return forbidden("delete this project")
		}

		tasks, err := tx.Tasks().FindByProjectID(ctx, id)
		if err != nil {
			return fmt.Errorf("listing project tasks: %w", err)
		}
		for _, t := range tasks {
			if err := deleteTaskCascade(ctx, tx, t.ID); err != nil {
				return err
			}
		}
		return tx.Projects().DeleteByID(ctx, id)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteProject", err, slog.String("id", id.String()))
		return err
	}
	return nil
}

// AttachWorkflow replaces the project's workflow. Existing tasks keep the
// stage they are in.
func (s *ProjectService) AttachWorkflow(ctx context.Context, projectID, workflowID, executorID idx.ID) (*project.Project, error) {
	s.logger.InfoContext(ctx, "attaching workflow",
		slog.String("project_id", projectID.String()),
		slog.String("workflow_id", workflowID.String()),
	)

	var updated *project.Project
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects().FindByID(ctx, projectID)
		if err != nil {
			return err
		}
		if _, err := tx.Workflows().FindByID(ctx, workflowID); err != nil {
			return fmt.Errorf("loading workflow %s: %w", workflowID, err)
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanAttachWorkflow(actor, p) {
			return forbidden("attach a workflow to this project")
		}

		p.WorkflowID = workflowID.Ptr()
		p.UpdatedAt = s.now()
		if err := tx.Projects().Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "AttachWorkflow", err, slog.String("project_id", projectID.String()))
		return nil, err
	}
	return updated, nil
}

// GenerateReport counts the project's tasks, the completed ones among them,
// and the hours logged against it.
func (s *ProjectService) GenerateReport(ctx context.Context, projectID, executorID idx.ID) (*project.Report, error) {
	s.logger.InfoContext(ctx, "generating report", slog.String("project_id", projectID.String()))

	var report project.Report
	err := s.store.WithTx(ctx, func(tx ports.Repositories) error {
		p, err := tx.Projects().FindByID(ctx, projectID)
		if err != nil {
			return err
		}
		actor, err := loadActor(ctx, tx, executorID)
		if err != nil {
			return err
		}
		if !access.CanGenerateReport(actor, p) {
			return forbidden("generate reports for this project")
		}

		manager, err := tx.Users().FindByID(ctx, p.ManagerID)
		if err != nil {
			return fmt.Errorf("loading manager: %w", err)
		}
		tasks, err := tx.Tasks().FindByProjectID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("listing project tasks: %w", err)
		}

		stages := make(map[idx.ID]*workflow.Stage)
		completed := 0
		for _, t := range tasks {
			st, ok := stages[t.StageID]
			if !ok {
				if st, err = tx.Workflows().FindStageByID(ctx, t.StageID); err != nil {
					return fmt.Errorf("loading stage %s: %w", t.StageID, err)
				}
				stages[t.StageID] = st
			}
			if st.IsCompletion() {
				completed++
			}
		}

		hours, err := tx.HourEntries().SumHoursByProjectID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("summing project hours: %w", err)
		}

		report = project.NewReport(p, manager.Name, len(tasks), completed, hours)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "GenerateReport", err, slog.String("project_id", projectID.String()))
		return nil, err
	}
	return &report, nil
}
