package sqlite

import (
	"context"
	"database/sql"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, name, description, manager_id, workflow_id, created_at, updated_at`

func scanProject(row scanner) (*project.Project, error) {
	var (
		p                    project.Project
		id, managerID        string
		workflowID           sql.NullString
		createdAt, updatedAt string
		err                  error
	)
	if err = row.Scan(&id, &p.Name, &p.Description, &managerID, &workflowID, &createdAt, &updatedAt); err != nil {
		return nil, mapErr(err)
	}
	p.ID, p.ManagerID = idx.ID(id), idx.ID(managerID)
	p.WorkflowID = decodeOptionalID(workflowID)
	if p.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectsRepo) FindByID(ctx context.Context, id idx.ID) (*project.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id.String())
	return scanProject(row)
}

func (r *projectsRepo) FindAll(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) Create(ctx context.Context, p *project.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.Name, p.Description, p.ManagerID.String(), encodeOptionalID(p.WorkflowID),
		encodeTime(p.CreatedAt), encodeTime(p.UpdatedAt),
	)
	return mapErr(err)
}

func (r *projectsRepo) Update(ctx context.Context, p *project.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, manager_id = ?, workflow_id = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, p.ManagerID.String(), encodeOptionalID(p.WorkflowID), encodeTime(p.UpdatedAt), p.ID.String(),
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *projectsRepo) DeleteByID(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
