// Package access holds the authorization predicates. Every predicate is a
// pure function of the acting user, their role, and the entities involved.
// Capabilities come from the role's permission set; role names are only
// consulted where the rule is literally "role ADMIN".
package access

import (
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
)

// Actor is the user performing an operation together with their role.
type Actor struct {
	User user.User
	Role user.Role
}

// Has reports whether the actor's role grants p.
func Has(a Actor, p user.Permission) bool {
	return a.Role.Has(p)
}

// IsAdmin reports whether the actor's role is ADMIN.
func IsAdmin(a Actor) bool {
	return a.Role.Name == user.RoleAdmin
}

// IsManager reports whether the actor manages p.
func IsManager(a Actor, p *project.Project) bool {
	return p.IsManagedBy(a.User.ID)
}

// CanCreateProject reports whether the actor may create projects. The role
// must grant CREATE_PROJECT, which ADMIN and MANAGER do by default.
func CanCreateProject(a Actor) bool {
	return Has(a, user.PermCreateProject)
}

// CanEditProject reports whether the actor may edit p. Its manager may, as
// may any role granting EDIT_ANY_PROJECT.
func CanEditProject(a Actor, p *project.Project) bool {
	return IsManager(a, p) || Has(a, user.PermEditAnyProject)
}

// CanDeleteProject reports whether the actor may delete p. Its manager may,
// as may any role granting DELETE_ANY_PROJECT.
func CanDeleteProject(a Actor, p *project.Project) bool {
	return IsManager(a, p) || Has(a, user.PermDeleteAnyProject)
}

// CanAttachWorkflow reports whether the actor may attach a workflow to p.
// Its manager may, as may any role granting ASSOCIATE_WORKFLOW.
func CanAttachWorkflow(a Actor, p *project.Project) bool {
	return IsManager(a, p) || Has(a, user.PermAssociateWorkflow)
}

// CanGenerateReport reports whether the actor may build a progress report
// for p. Its manager may, as may any role granting GENERATE_REPORTS.
func CanGenerateReport(a Actor, p *project.Project) bool {
	return IsManager(a, p) || Has(a, user.PermGenerateReports)
}

// CanCreateTask reports whether the actor's role grants CREATE_TASK.
func CanCreateTask(a Actor) bool {
	return Has(a, user.PermCreateTask)
}

// CanMoveTask reports whether the actor may move t between stages of p's
// workflow. The task's responsible and the project manager may, as may any
// role granting MOVE_ANY_TASK.
func CanMoveTask(a Actor, t *task.Task, p *project.Project) bool {
	return t.IsResponsible(a.User.ID) || IsManager(a, p) || Has(a, user.PermMoveAnyTask)
}

// CanSetResponsible reports whether the actor may reassign a task of p. The
// project manager may, as may any role granting ASSIGN_ANY_RESPONSIBLE.
func CanSetResponsible(a Actor, p *project.Project) bool {
	return IsManager(a, p) || Has(a, user.PermAssignAnyResponsible)
}

// CanDeleteTask reports whether the actor may delete t. The project manager
// and the current responsible may. So may ADMIN, by role name rather than
// by permission.
func CanDeleteTask(a Actor, t *task.Task, p *project.Project) bool {
	return IsManager(a, p) || t.IsResponsible(a.User.ID) || IsAdmin(a)
}

// CanLogHours reports whether the actor may log hours against t. Only the
// current responsible may; managers and admins get no exception.
func CanLogHours(a Actor, t *task.Task) bool {
	return t.IsResponsible(a.User.ID)
}

// CanEditEntry reports whether the actor authored e and so may edit it.
func CanEditEntry(a Actor, e *timelog.Entry) bool {
	return e.IsAuthoredBy(a.User.ID)
}

// CanDeleteEntry reports whether the actor may delete e. Its author may, as
// may the manager of the project the entry's task belongs to.
func CanDeleteEntry(a Actor, e *timelog.Entry, p *project.Project) bool {
	return e.IsAuthoredBy(a.User.ID) || IsManager(a, p)
}

// CanEditComment reports whether the actor authored c and so may edit it.
func CanEditComment(a Actor, c *comment.Comment) bool {
	return c.IsAuthoredBy(a.User.ID)
}

// CanDeleteComment reports whether the actor may delete c. Its author may,
// as may the manager of the project the comment's task belongs to.
func CanDeleteComment(a Actor, c *comment.Comment, p *project.Project) bool {
	return c.IsAuthoredBy(a.User.ID) || IsManager(a, p)
}

// CanManageWorkflows reports whether the actor's role grants
// MANAGE_WORKFLOWS, which covers creating, extending and deleting workflows.
func CanManageWorkflows(a Actor) bool {
	return Has(a, user.PermManageWorkflows)
}

// CanDeleteUser reports whether the actor's role grants MANAGE_USERS.
func CanDeleteUser(a Actor) bool {
	return Has(a, user.PermManageUsers)
}
