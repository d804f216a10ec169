package app

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/store/sqlite"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/password"
)

var epoch = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// testEnv is a migrated in-memory store with the default roles seeded.
type testEnv struct {
	store *sqlite.Store
	roles map[string]user.Role
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.ApplyMigrations())

	dir := NewDirectoryService(store, password.NewHasher(""), discardLogger())
	require.NoError(t, dir.SeedRoles(ctx))

	roles, err := store.Roles().List(ctx)
	require.NoError(t, err)

	env := &testEnv{store: store, roles: make(map[string]user.Role, len(roles))}
	for _, r := range roles {
		env.roles[r.Name] = r
	}
	return env
}

// user inserts a user with the named role directly into the store.
func (e *testEnv) user(t *testing.T, roleName, name string) user.User {
	t.Helper()

	role, ok := e.roles[roleName]
	require.True(t, ok, "unknown role %s", roleName)

	u := user.User{
		ID:           idx.New(),
		Name:         name,
		Email:        fmt.Sprintf("%s.%s@example.com", name, idx.New()),
		PasswordHash: "unused",
		RoleID:       role.ID,
		CreatedAt:    epoch,
		UpdatedAt:    epoch,
	}
	require.NoError(t, e.store.Users().Create(context.Background(), &u))
	return u
}

// workflow inserts a workflow whose stages are ordered as given, starting at 1.
func (e *testEnv) workflow(t *testing.T, stageNames ...string) workflow.Workflow {
	t.Helper()

	wf := workflow.Workflow{ID: idx.New(), Name: "Flow " + idx.New().String(), CreatedAt: epoch}
	for i, name := range stageNames {
		wf.Stages = append(wf.Stages, workflow.Stage{ID: idx.New(), Name: name, Order: i + 1})
	}
	require.NoError(t, e.store.Workflows().Create(context.Background(), &wf))

	saved, err := e.store.Workflows().FindByID(context.Background(), wf.ID)
	require.NoError(t, err)
	return *saved
}

// project inserts a project managed by managerID. wf may be nil.
func (e *testEnv) project(t *testing.T, managerID idx.ID, wf *workflow.Workflow) project.Project {
	t.Helper()

	p := project.Project{
		ID:        idx.New(),
		Name:      "Apollo",
		ManagerID: managerID,
		CreatedAt: epoch,
		UpdatedAt: epoch,
	}
	if wf != nil {
		p.WorkflowID = wf.ID.Ptr()
	}
	require.NoError(t, e.store.Projects().Create(context.Background(), &p))
	return p
}

func stageNamed(t *testing.T, wf workflow.Workflow, name string) workflow.Stage {
	t.Helper()

	for _, st := range wf.Stages {
		if st.Name == name {
			return st
		}
	}
	t.Fatalf("workflow %s has no stage %q", wf.Name, name)
	return workflow.Stage{}
}
