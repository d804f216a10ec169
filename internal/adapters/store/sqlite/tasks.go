package sqlite

import (
	"context"
	"database/sql"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, project_id, title, description, responsible_id, stage_id, created_at, updated_at, completed_at`

func scanTask(row scanner) (*task.Task, error) {
	var (
		t                        task.Task
		id, projectID, stageID   string
		responsibleID, completed sql.NullString
		createdAt, updatedAt     string
		err                      error
	)
	err = row.Scan(&id, &projectID, &t.Title, &t.Description, &responsibleID, &stageID,
		&createdAt, &updatedAt, &completed)
	if err != nil {
		return nil, mapErr(err)
	}
	t.ID, t.ProjectID, t.StageID = idx.ID(id), idx.ID(projectID), idx.ID(stageID)
	t.ResponsibleID = decodeOptionalID(responsibleID)
	if t.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	if t.CompletedAt, err = decodeOptionalTime(completed); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tasksRepo) list(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) FindByID(ctx context.Context, id idx.ID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id.String())
	return scanTask(row)
}

func (r *tasksRepo) FindByProjectID(ctx context.Context, projectID idx.ID) ([]task.Task, error) {
	return r.list(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at, id`, projectID.String())
}

func (r *tasksRepo) FindByResponsibleID(ctx context.Context, userID idx.ID) ([]task.Task, error) {
	return r.list(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE responsible_id = ? ORDER BY created_at, id`, userID.String())
}

func (r *tasksRepo) Create(ctx context.Context, t *task.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.ProjectID.String(), t.Title, t.Description, encodeOptionalID(t.ResponsibleID),
		t.StageID.String(), encodeTime(t.CreatedAt), encodeTime(t.UpdatedAt), encodeOptionalTime(t.CompletedAt),
	)
	return mapErr(err)
}

func (r *tasksRepo) Update(ctx context.Context, t *task.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, responsible_id = ?, stage_id = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`,
		t.Title, t.Description, encodeOptionalID(t.ResponsibleID), t.StageID.String(),
		encodeTime(t.UpdatedAt), encodeOptionalTime(t.CompletedAt), t.ID.String(),
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *tasksRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
