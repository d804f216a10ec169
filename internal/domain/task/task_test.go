package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

func TestDraftValidate(t *testing.T) {
	t.Parallel()

	ok := task.Draft{Title: "Fix bug", ProjectID: idx.New()}
	require.NoError(t, ok.Validate())

	blank := task.Draft{Title: "   ", ProjectID: idx.New()}
	require.ErrorIs(t, blank.Validate(), domain.ErrValidation)

	noProject := task.Draft{Title: "Fix bug"}
	require.ErrorIs(t, noProject.Validate(), domain.ErrValidation)
}

func TestUpdateApply(t *testing.T) {
	t.Parallel()

	empty := ""
	tk := task.Task{Title: "Old", Description: "old"}

	task.Update{Title: " "}.Apply(&tk)
	assert.Equal(t, "Old", tk.Title)
	assert.Equal(t, "old", tk.Description)

	task.Update{Title: "New", Description: &empty}.Apply(&tk)
	assert.Equal(t, "New", tk.Title)
	assert.Empty(t, tk.Description)
}

func TestIsResponsible(t *testing.T) {
	t.Parallel()

	u := idx.New()
	tk := task.Task{}
	assert.False(t, tk.IsResponsible(u))

	tk.ResponsibleID = u.Ptr()
	assert.True(t, tk.IsResponsible(u))
	assert.False(t, tk.IsResponsible(idx.New()))
}

func TestNotes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "moved from 'Backlog' to 'Done'", task.MoveNote("Backlog", "Done"))
	assert.Equal(t, "responsible changed to: Ana", task.ResponsibleNote("Ana"))
	assert.Equal(t, "responsible changed to: nobody", task.ResponsibleNote(""))
}
