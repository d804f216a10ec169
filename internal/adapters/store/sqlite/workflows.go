package sqlite

import (
	"context"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type workflowsRepo struct {
	db dbtx
}

const stageColumns = `id, workflow_id, name, position`

func scanStage(row scanner) (*workflow.Stage, error) {
	var (
		s              workflow.Stage
		id, workflowID string
	)
	if err := row.Scan(&id, &workflowID, &s.Name, &s.Order); err != nil {
		return nil, mapErr(err)
	}
	s.ID, s.WorkflowID = idx.ID(id), idx.ID(workflowID)
	return &s, nil
}

func (r *workflowsRepo) FindByID(ctx context.Context, id idx.ID) (*workflow.Workflow, error) {
	var (
		w         workflow.Workflow
		rawID     string
		createdAt string
		err       error
	)
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM workflows WHERE id = ?`, id.String(),
	).Scan(&rawID, &w.Name, &createdAt)
	if err != nil {
		return nil, mapErr(err)
	}
	w.ID = idx.ID(rawID)
	if w.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}

	if w.Stages, err = r.ListStages(ctx, w.ID); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workflowsRepo) List(ctx context.Context) ([]workflow.Workflow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM workflows ORDER BY created_at, id`)
	if err != nil {
		return nil, mapErr(err)
	}

	workflows := []workflow.Workflow{}
	for rows.Next() {
		var (
			w             workflow.Workflow
			id, createdAt string
		)
		if err := rows.Scan(&id, &w.Name, &createdAt); err != nil {
			_ = rows.Close()
			return nil, mapErr(err)
		}
		w.ID = idx.ID(id)
		if w.CreatedAt, err = decodeTime(createdAt); err != nil {
			_ = rows.Close()
			return nil, err
		}
		workflows = append(workflows, w)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// Stages are loaded after the cursor is released.
	_ = rows.Close()

	for i := range workflows {
		if workflows[i].Stages, err = r.ListStages(ctx, workflows[i].ID); err != nil {
			return nil, err
		}
	}
	return workflows, nil
}

// ListStages returns a workflow's stages ordered by position.
func (r *workflowsRepo) ListStages(ctx context.Context, workflowID idx.ID) ([]workflow.Stage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stageColumns+` FROM stages WHERE workflow_id = ? ORDER BY position`, workflowID.String())
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	stages := []workflow.Stage{}
	for rows.Next() {
		s, err := scanStage(rows)
		if err != nil {
			return nil, err
		}
		stages = append(stages, *s)
	}
	return stages, rows.Err()
}

func (r *workflowsRepo) Create(ctx context.Context, w *workflow.Workflow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workflows (id, name, created_at) VALUES (?, ?, ?)`,
		w.ID.String(), w.Name, encodeTime(w.CreatedAt),
	)
	if err != nil {
		return mapErr(err)
	}

	for i := range w.Stages {
		w.Stages[i].WorkflowID = w.ID
		if err := r.CreateStage(ctx, &w.Stages[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *workflowsRepo) DeleteByID(ctx context.Context, id idx.ID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stages WHERE workflow_id = ?`, id.String()); err != nil {
		return mapErr(err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM workflows WHERE id = ?`, id.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *workflowsRepo) IsInUse(ctx context.Context, id idx.ID) (bool, error) {
	var inUse bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM projects WHERE workflow_id = ?1)
		    OR EXISTS (SELECT 1 FROM tasks t JOIN stages s ON s.id = t.stage_id WHERE s.workflow_id = ?1)`,
		id.String(),
	).Scan(&inUse)
	return inUse, mapErr(err)
}

func (r *workflowsRepo) CreateStage(ctx context.Context, s *workflow.Stage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stages (`+stageColumns+`) VALUES (?, ?, ?, ?)`,
		s.ID.String(), s.WorkflowID.String(), s.Name, s.Order,
	)
	return mapErr(err)
}

func (r *workflowsRepo) FindStageByID(ctx context.Context, id idx.ID) (*workflow.Stage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+stageColumns+` FROM stages WHERE id = ?`, id.String())
	return scanStage(row)
}

func (r *workflowsRepo) FindFirstStage(ctx context.Context, workflowID idx.ID) (*workflow.Stage, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+stageColumns+` FROM stages WHERE workflow_id = ? ORDER BY position LIMIT 1`,
		workflowID.String())
	return scanStage(row)
}
