// Package sqlite implements the ports.Store persistence port on an embedded
// SQLite database (modernc.org/sqlite, pure Go) with schema migrations
// applied from embedded SQL files.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"

	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// Compile-time check that Store implements ports.Store.
var _ ports.Store = (*Store)(nil)

const tracerName = "github.com/carolinafmacedo/workflowmanagement/internal/adapters/store/sqlite"

// dbtx is satisfied by both *sql.DB and *sql.Tx so repositories run
// unchanged inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// repos binds every repository to one dbtx.
type repos struct {
	db dbtx
}

func (r repos) Users() ports.UserRepository                 { return &usersRepo{db: r.db} }
func (r repos) Roles() ports.RoleRepository                 { return &rolesRepo{db: r.db} }
func (r repos) Workflows() ports.WorkflowRepository         { return &workflowsRepo{db: r.db} }
func (r repos) Projects() ports.ProjectRepository           { return &projectsRepo{db: r.db} }
func (r repos) Tasks() ports.TaskRepository                 { return &tasksRepo{db: r.db} }
func (r repos) Comments() ports.CommentRepository           { return &commentsRepo{db: r.db} }
func (r repos) HourEntries() ports.HourEntryRepository      { return &hourEntriesRepo{db: r.db} }
func (r repos) Notifications() ports.NotificationRepository { return &notificationsRepo{db: r.db} }

// Store is the SQLite-backed ports.Store.
type Store struct {
	repos
	db *sql.DB
}

// NewStore opens the database at dsn and enables foreign keys. SQLite
// serializes writers, so the pool is pinned to one connection; this also
// keeps ":memory:" databases alive for the life of the Store.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configuring sqlite (%s): %w", pragma, err)
		}
	}

	return &Store{repos: repos{db: db}, db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, committing on success and rolling
// back on error or panic.
func (s *Store) WithTx(ctx context.Context, fn func(tx ports.Repositories) error) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sqlite.WithTx")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// Rollback after Commit returns sql.ErrTxDone and is ignored.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(repos{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
