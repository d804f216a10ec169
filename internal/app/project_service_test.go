package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

func strPtr(s string) *string { return &s }

// --- NewProjectService ---

func TestNewProjectService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(nil, nil)
	if svc.logger == nil {
		t.Fatal("NewProjectService(nil logger) should create a no-op logger, got nil")
	}
}

// --- CreateProject ---

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newEnv(t)
	svc := NewProjectService(env.store, discardLogger())

	tests := []struct {
		role    string
		wantErr error
	}{
		{user.RoleDeveloper, domain.ErrForbidden},
		{user.RoleManager, nil},
		{user.RoleAdmin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			u := env.user(t, tt.role, "Uma")
			got, err := svc.CreateProject(ctx, " Apollo ", "moon", u.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateProject() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			assert.Equal(t, "Apollo", got.Name)
			assert.Equal(t, u.ID, got.ManagerID)
			assert.False(t, got.HasWorkflow())

			stored, err := svc.GetProject(ctx, got.ID)
			require.NoError(t, err)
			assert.Equal(t, got.Name, stored.Name)
		})
	}

	t.Run("missing manager", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, "Apollo", "", idx.New())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("CreateProject() error = %v, want ErrNotFound", err)
		}
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("CreateProject() error = %v, want ErrUnauthenticated", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, "   ", "", idx.New())
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateProject() error = %v, want ErrValidation", err)
		}
	})

	all, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// --- EditProject ---

func TestProjectService_EditProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newEnv(t)
	svc := NewProjectService(env.store, discardLogger())

	manager := env.user(t, user.RoleManager, "Marta")
	otherManager := env.user(t, user.RoleManager, "Otto")
	admin := env.user(t, user.RoleAdmin, "Alex")
	p := env.project(t, manager.ID, nil)

	_, err := svc.EditProject(ctx, p.ID, project.Update{Name: "Hijacked"}, otherManager.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("EditProject() by another manager error = %v, want ErrForbidden", err)
	}

	edited, err := svc.EditProject(ctx, p.ID, project.Update{Description: strPtr("phase 2")}, manager.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", edited.Name)
	assert.Equal(t, "phase 2", edited.Description)

	edited, err = svc.EditProject(ctx, p.ID, project.Update{Name: "Artemis"}, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Artemis", edited.Name)
}

// --- AttachWorkflow ---

func TestProjectService_AttachWorkflow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newEnv(t)
	svc := NewProjectService(env.store, discardLogger())
	tasks, _ := newTaskService(t, env)

	manager := env.user(t, user.RoleManager, "Marta")
	dev := env.user(t, user.RoleDeveloper, "Davi")
	first := env.workflow(t, "Backlog", "Done")
	second := env.workflow(t, "Open", "Closed")
	p := env.project(t, manager.ID, nil)

	tests := []struct {
		name       string
		workflowID idx.ID
		executorID idx.ID
		wantErr    error
	}{
		{"missing workflow", idx.New(), manager.ID, domain.ErrNotFound},
		{"missing executor", first.ID, idx.New(), domain.ErrNotFound},
		{"developer", first.ID, dev.ID, domain.ErrForbidden},
		{"manager", first.ID, manager.ID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AttachWorkflow(ctx, p.ID, tt.workflowID, tt.executorID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AttachWorkflow() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	created, err := tasks.CreateTask(ctx, task.Draft{Title: "Scope", ProjectID: p.ID}, manager.ID)
	require.NoError(t, err)

	updated, err := svc.AttachWorkflow(ctx, p.ID, second.ID, manager.ID)
	require.NoError(t, err)
	assert.True(t, idx.Equal(updated.WorkflowID, second.ID))

	stored, err := env.store.Tasks().FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, stageNamed(t, first, "Backlog").ID, stored.StageID, "existing tasks keep their stage")
}

// --- DeleteProject ---

func TestProjectService_DeleteProjectCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newEnv(t)
	svc := NewProjectService(env.store, discardLogger())
	tasks, _ := newTaskService(t, env)
	comments := NewCommentService(env.store, discardLogger())

	manager := env.user(t, user.RoleManager, "Marta")
	dev := env.user(t, user.RoleDeveloper, "Davi")
	wf := env.workflow(t, "Backlog", "Done")
	p := env.project(t, manager.ID, &wf)

	created, err := tasks.CreateTask(ctx, task.Draft{Title: "Scope", ProjectID: p.ID}, manager.ID)
	require.NoError(t, err)
	_, err = comments.AddComment(ctx, created.ID, "first", manager.ID)
	require.NoError(t, err)

	err = svc.DeleteProject(ctx, p.ID, dev.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("DeleteProject() error = %v, want ErrForbidden", err)
	}

	require.NoError(t, svc.DeleteProject(ctx, p.ID, manager.ID))

	_, err = svc.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = env.store.Tasks().FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	left, err := env.store.Comments().FindByTaskIDOrderByCreatedAtAsc(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

// --- GenerateReport ---

func TestProjectService_GenerateReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newEnv(t)
	svc := NewProjectService(env.store, discardLogger())
	tasks, _ := newTaskService(t, env)

	manager := env.user(t, user.RoleManager, "Marta")
	dev := env.user(t, user.RoleDeveloper, "Davi")
	wf := env.workflow(t, "Backlog", "Doing", "Done")
	p := env.project(t, manager.ID, &wf)

	t.Run("empty project", func(t *testing.T) {
		report, err := svc.GenerateReport(ctx, p.ID, manager.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, report.TotalTasks)
		assert.Equal(t, "0.00%", report.ProgressText())
	})

	ids := make([]idx.ID, 0, 4)
	for range 4 {
		created, err := tasks.CreateTask(ctx, task.Draft{Title: "Work", ProjectID: p.ID}, manager.ID)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := tasks.MoveToStage(ctx, ids[0], stageNamed(t, wf, "Done").ID, manager.ID)
	require.NoError(t, err)
	_, err = tasks.MoveToStage(ctx, ids[1], stageNamed(t, wf, "Doing").ID, manager.ID)
	require.NoError(t, err)

	t.Run("one of four done", func(t *testing.T) {
		report, err := svc.GenerateReport(ctx, p.ID, manager.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, report.TotalTasks)
		assert.Equal(t, 1, report.CompletedTasks)
		assert.Equal(t, "25.00%", report.ProgressText())
		assert.Equal(t, "Marta", report.ManagerName)
		assert.Contains(t, report.Summary(), "Progress: 25.00%")
	})

	t.Run("developer is not allowed", func(t *testing.T) {
		_, err := svc.GenerateReport(ctx, p.ID, dev.ID)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("GenerateReport() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := svc.GenerateReport(ctx, idx.New(), manager.ID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GenerateReport() error = %v, want ErrNotFound", err)
		}
	})
}
