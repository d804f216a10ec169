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

// Store is the persistence port. Implemented by the SQLite adapter; used by
// the application layer. Every lookup re-reads from storage.
type Store interface {
	Repositories

	// WithTx runs fn inside one transaction. The transaction commits when fn
	// returns nil and rolls back otherwise, so all writes made through the
	// Repositories passed to fn apply atomically or not at all.
	WithTx(ctx context.Context, fn func(tx Repositories) error) error

	// Ping verifies the storage connection.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

// Repositories groups the per-entity repositories bound to one connection
// or transaction.
type Repositories interface {
	Users() UserRepository
	Roles() RoleRepository
	Workflows() WorkflowRepository
	Projects() ProjectRepository
	Tasks() TaskRepository
	Comments() CommentRepository
	HourEntries() HourEntryRepository
	Notifications() NotificationRepository
}

// UserRepository stores directory users.
// Lookups return domain.ErrNotFound when no row matches.
type UserRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts u. Returns domain.ErrConflict on a duplicate email.
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	DeleteByID(ctx context.Context, id idx.ID) error

	// IsReferenced reports whether any project, task, comment, or hour entry
	// still points at the user.
	IsReferenced(ctx context.Context, id idx.ID) (bool, error)
}

// RoleRepository stores roles and their permission sets.
type RoleRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*user.Role, error)
	FindByName(ctx context.Context, name string) (*user.Role, error)
	List(ctx context.Context) ([]user.Role, error)
	Create(ctx context.Context, r *user.Role) error
	IsEmpty(ctx context.Context) (bool, error)
}

// WorkflowRepository stores workflow definitions and their stages.
// Returned workflows carry their stages ordered by Order ascending.
type WorkflowRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*workflow.Workflow, error)
	List(ctx context.Context) ([]workflow.Workflow, error)

	// Create inserts the workflow together with its stages.
	Create(ctx context.Context, w *workflow.Workflow) error

	// DeleteByID removes the workflow and its stages.
	DeleteByID(ctx context.Context, id idx.ID) error

	// IsInUse reports whether a project references the workflow or a task
	// sits in one of its stages.
	IsInUse(ctx context.Context, id idx.ID) (bool, error)

	// ListStages returns a workflow's stages ordered by Order ascending.
	ListStages(ctx context.Context, workflowID idx.ID) ([]workflow.Stage, error)
	CreateStage(ctx context.Context, s *workflow.Stage) error
	FindStageByID(ctx context.Context, id idx.ID) (*workflow.Stage, error)

	// FindFirstStage returns the lowest-order stage of a workflow, or
	// domain.ErrNotFound when the workflow has no stages.
	FindFirstStage(ctx context.Context, workflowID idx.ID) (*workflow.Stage, error)
}

// ProjectRepository stores projects.
type ProjectRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*project.Project, error)
	FindAll(ctx context.Context) ([]project.Project, error)
	Create(ctx context.Context, p *project.Project) error
	Update(ctx context.Context, p *project.Project) error
	DeleteByID(ctx context.Context, id idx.ID) error
}

// TaskRepository stores tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*task.Task, error)
	FindByProjectID(ctx context.Context, projectID idx.ID) ([]task.Task, error)
	FindByResponsibleID(ctx context.Context, userID idx.ID) ([]task.Task, error)
	Create(ctx context.Context, t *task.Task) error
	Update(ctx context.Context, t *task.Task) error
	Delete(ctx context.Context, id idx.ID) error
}

// CommentRepository stores task comments.
type CommentRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*comment.Comment, error)

	// FindByTaskIDOrderByCreatedAtAsc lists a task's comments oldest first,
	// ties broken by id.
	FindByTaskIDOrderByCreatedAtAsc(ctx context.Context, taskID idx.ID) ([]comment.Comment, error)
	Create(ctx context.Context, c *comment.Comment) error
	Update(ctx context.Context, c *comment.Comment) error
	DeleteByID(ctx context.Context, id idx.ID) error
	DeleteByTaskID(ctx context.Context, taskID idx.ID) error
}

// HourEntryRepository stores hour entries. Sums are exact decimals and zero
// when nothing matches.
type HourEntryRepository interface {
	FindByID(ctx context.Context, id idx.ID) (*timelog.Entry, error)
	FindByTaskID(ctx context.Context, taskID idx.ID) ([]timelog.Entry, error)

	// FindByUserAndDateRange lists a user's entries whose log date falls in
	// [from, to], both inclusive.
	FindByUserAndDateRange(ctx context.Context, userID idx.ID, from, to time.Time) ([]timelog.Entry, error)
	SumHoursByTaskID(ctx context.Context, taskID idx.ID) (decimal.Decimal, error)
	SumHoursByProjectID(ctx context.Context, projectID idx.ID) (decimal.Decimal, error)
	Create(ctx context.Context, e *timelog.Entry) error
	Update(ctx context.Context, e *timelog.Entry) error
	DeleteByID(ctx context.Context, id idx.ID) error
	DeleteByTaskID(ctx context.Context, taskID idx.ID) error
}

// NotificationRepository stores per-user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error

	// FindByUserID lists a user's notifications newest first.
	FindByUserID(ctx context.Context, userID idx.ID) ([]notification.Notification, error)

	// MarkRead flags a notification owned by userID as read. Returns
	// domain.ErrNotFound when no such notification belongs to the user.
	MarkRead(ctx context.Context, id, userID idx.ID) error
}
