// Package task defines the task aggregate. A task's state is its current
// stage, drawn from the workflow attached to its project.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// Task is a unit of work inside a project.
type Task struct {
	ID            idx.ID
	ProjectID     idx.ID
	Title         string
	Description   string
	ResponsibleID *idx.ID
	StageID       idx.ID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// IsResponsible reports whether userID is the task's current responsible.
func (t *Task) IsResponsible(userID idx.ID) bool {
	return idx.Equal(t.ResponsibleID, userID)
}

// IsCompleted reports whether a completion timestamp was ever stamped.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// Draft carries the fields needed to create a task.
type Draft struct {
	Title         string
	Description   string
	ProjectID     idx.ID
	ResponsibleID *idx.ID
}

// Validate checks draft input before any lookup.
func (d *Draft) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(d.Title) == "" {
		fields.Add("title", domain.MsgRequired)
	}
	if d.ProjectID.IsZero() {
		fields.Add("project_id", domain.MsgRequired)
	}

	return fields.Err()
}

// Update holds optional task edits. A blank Title or nil Description leaves
// the field unchanged.
type Update struct {
	Title       string
	Description *string
}

// Apply copies the effective changes of u onto t.
func (u Update) Apply(t *Task) {
	if title := strings.TrimSpace(u.Title); title != "" {
		t.Title = title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
}

// MoveNote is the automatic comment recorded on a stage transition.
func MoveNote(from, to string) string {
	return fmt.Sprintf("moved from '%s' to '%s'", from, to)
}

// ResponsibleNote is the automatic comment recorded when responsibility
// changes. An empty name means the responsible was cleared.
func ResponsibleNote(name string) string {
	if name == "" {
		name = "nobody"
	}
	return "responsible changed to: " + name
}
