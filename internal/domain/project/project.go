// Package project defines the project aggregate and its progress report.
package project

import (
	"strings"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// Project groups tasks under a manager. WorkflowID is nil until a workflow
// is attached, and a project without a workflow cannot contain tasks.
type Project struct {
	ID          idx.ID
	Name        string
	Description string
	ManagerID   idx.ID
	WorkflowID  *idx.ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasWorkflow reports whether a workflow is attached.
func (p *Project) HasWorkflow() bool {
	return p.WorkflowID != nil && !p.WorkflowID.IsZero()
}

// IsManagedBy reports whether userID is the project's manager.
func (p *Project) IsManagedBy(userID idx.ID) bool {
	return p.ManagerID == userID
}

// Validate checks business rules for a new Project.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(p.Name) == "" {
		fields.Add("name", domain.MsgRequired)
	}
	if p.ManagerID.IsZero() {
		fields.Add("manager_id", domain.MsgRequired)
	}

	return fields.Err()
}

// Update holds optional project edits. A blank Name or nil Description
// leaves the field unchanged.
type Update struct {
	Name        string
	Description *string
}

// Apply copies the effective changes of u onto p.
func (u Update) Apply(p *Project) {
	if name := strings.TrimSpace(u.Name); name != "" {
		p.Name = name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
}
