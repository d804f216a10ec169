package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// DirectoryService manages users and roles.
type DirectoryService interface {
	// Register creates a user with a hashed password.
	// Returns domain.ErrValidation for malformed input, domain.ErrConflict for
	// a duplicate email, and domain.ErrNotFound for an unknown role.
	Register(ctx context.Context, reg user.Registration) (*user.User, error)

	// Authenticate checks credentials. Returns domain.ErrUnauthenticated for
	// an unknown email or a wrong password alike.
	Authenticate(ctx context.Context, email, password string) (*user.User, *user.Role, error)

	// GetUser returns a user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id idx.ID) (*user.User, error)

	// UpdateProfile applies name and job title changes to the user.
	UpdateProfile(ctx context.Context, id idx.ID, upd user.ProfileUpdate) (*user.User, error)

	// DeleteUser removes a user. Requires MANAGE_USERS.
	// Returns domain.ErrConflict while the user is still referenced.
	DeleteUser(ctx context.Context, id, executorID idx.ID) error

	// ListRoles returns every role with its permissions.
	ListRoles(ctx context.Context) ([]user.Role, error)
}

// WorkflowService manages workflow definitions and stages.
type WorkflowService interface {
	ListWorkflows(ctx context.Context) ([]workflow.Workflow, error)

	// GetWorkflow returns a workflow with its stages ordered ascending.
	// Returns domain.ErrNotFound if the workflow does not exist.
	GetWorkflow(ctx context.Context, id idx.ID) (*workflow.Workflow, error)

	// CreateWorkflow creates a workflow and its initial stages.
	// Requires MANAGE_WORKFLOWS.
	CreateWorkflow(ctx context.Context, wf *workflow.Workflow, executorID idx.ID) (*workflow.Workflow, error)

	// AddStage appends a stage. Returns domain.ErrValidation on a duplicate order.
	AddStage(ctx context.Context, workflowID idx.ID, stage workflow.Stage, executorID idx.ID) (*workflow.Stage, error)

	// DeleteWorkflow removes a workflow and its stages.
	// Returns domain.ErrConflict while a project or task still uses it.
	DeleteWorkflow(ctx context.Context, id, executorID idx.ID) error
}

// ProjectService defines the project registry operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// ListProjects returns all projects. No permission check.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// GetProject returns a single project by ID. No permission check.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id idx.ID) (*project.Project, error)

	// CreateProject creates a project managed by managerID with no workflow.
	// Returns domain.ErrNotFound if the manager does not exist and
	// domain.ErrForbidden unless the manager's role grants CREATE_PROJECT.
	CreateProject(ctx context.Context, name, description string, managerID idx.ID) (*project.Project, error)

	// EditProject updates name and description.
	// Allowed for the manager or EDIT_ANY_PROJECT.
	EditProject(ctx context.Context, id idx.ID, upd project.Update, executorID idx.ID) (*project.Project, error)

	// DeleteProject removes the project with all its tasks, comments, and
	// hour entries. Allowed for the manager or DELETE_ANY_PROJECT.
	DeleteProject(ctx context.Context, id, executorID idx.ID) error

	// AttachWorkflow replaces the project's workflow.
	// Allowed for the manager or ASSOCIATE_WORKFLOW.
	AttachWorkflow(ctx context.Context, projectID, workflowID, executorID idx.ID) (*project.Project, error)

	// GenerateReport computes task totals and progress.
	// Allowed for the manager or GENERATE_REPORTS.
	GenerateReport(ctx context.Context, projectID, executorID idx.ID) (*project.Report, error)
}

// TaskService defines the task engine operations.
type TaskService interface {
	// CreateTask creates a task at the lowest-order stage of the project's
	// workflow. Returns domain.ErrIllegalState when the project has no
	// workflow or the workflow has no stages, and domain.ErrForbidden unless
	// the creator holds CREATE_TASK.
	CreateTask(ctx context.Context, draft task.Draft, creatorID idx.ID) (*task.Task, error)

	// GetTask returns a task by ID.
	GetTask(ctx context.Context, id idx.ID) (*task.Task, error)

	// ListByProject returns the project's tasks.
	// Returns domain.ErrNotFound if the project does not exist.
	ListByProject(ctx context.Context, projectID idx.ID) ([]task.Task, error)

	// ListByResponsible returns tasks the user is responsible for.
	ListByResponsible(ctx context.Context, userID idx.ID) ([]task.Task, error)

	// MoveToStage transitions the task and records the move as a comment.
	// Returns domain.ErrIllegalState when the stage belongs to another workflow.
	MoveToStage(ctx context.Context, taskID, stageID, executorID idx.ID) (*task.Task, error)

	// SetResponsible assigns or clears (nil) the responsible user.
	SetResponsible(ctx context.Context, taskID idx.ID, responsibleID *idx.ID, executorID idx.ID) (*task.Task, error)

	// EditTask updates title and description. No permission check.
	EditTask(ctx context.Context, taskID idx.ID, upd task.Update, executorID idx.ID) (*task.Task, error)

	// DeleteTask removes the task with its comments and hour entries.
	DeleteTask(ctx context.Context, taskID, executorID idx.ID) error
}

// TimeLedgerService defines hour logging operations.
type TimeLedgerService interface {
	// LogHours records hours on a task. Only the task's responsible may log.
	LogHours(ctx context.Context, taskID idx.ID, hours decimal.Decimal, date time.Time, userID idx.ID) (*timelog.Entry, error)

	// EditEntry changes hours and date. Only the entry's author may edit.
	EditEntry(ctx context.Context, entryID idx.ID, hours decimal.Decimal, date time.Time, executorID idx.ID) (*timelog.Entry, error)

	// DeleteEntry removes an entry. Allowed for the author or the project manager.
	DeleteEntry(ctx context.Context, entryID, executorID idx.ID) error

	// TotalHoursForTask sums a task's hours; zero when it has none.
	TotalHoursForTask(ctx context.Context, taskID idx.ID) (decimal.Decimal, error)

	// TotalHoursForProject sums hours across the project's tasks.
	TotalHoursForProject(ctx context.Context, projectID idx.ID) (decimal.Decimal, error)

	ListByTask(ctx context.Context, taskID idx.ID) ([]timelog.Entry, error)

	// ListByUser returns the user's entries within an inclusive day range.
	ListByUser(ctx context.Context, userID idx.ID, r timelog.Range) ([]timelog.Entry, error)
}

// CommentService defines the annotation log operations.
type CommentService interface {
	// AddComment attaches a comment. Any existing user may comment.
	AddComment(ctx context.Context, taskID idx.ID, text string, authorID idx.ID) (*comment.Comment, error)

	// EditComment changes the text. Only the author may edit.
	EditComment(ctx context.Context, commentID idx.ID, text string, executorID idx.ID) (*comment.Comment, error)

	// DeleteComment removes a comment. Allowed for the author or the project manager.
	DeleteComment(ctx context.Context, commentID, executorID idx.ID) error

	// ListByTask returns comments oldest first.
	// Returns domain.ErrNotFound if the task does not exist.
	ListByTask(ctx context.Context, taskID idx.ID) ([]comment.Comment, error)
}

// NotificationService exposes a user's notifications.
type NotificationService interface {
	ListForUser(ctx context.Context, userID idx.ID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id, userID idx.ID) error
}
