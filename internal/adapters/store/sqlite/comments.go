package sqlite

import (
	"context"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type commentsRepo struct {
	db dbtx
}

const commentColumns = `id, task_id, author_id, body, created_at, updated_at`

func scanComment(row scanner) (*comment.Comment, error) {
	var (
		c                    comment.Comment
		id, taskID, authorID string
		createdAt, updatedAt string
		err                  error
	)
	if err = row.Scan(&id, &taskID, &authorID, &c.Text, &createdAt, &updatedAt); err != nil {
		return nil, mapErr(err)
	}
	c.ID, c.TaskID, c.AuthorID = idx.ID(id), idx.ID(taskID), idx.ID(authorID)
	if c.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentsRepo) FindByID(ctx context.Context, id idx.ID) (*comment.Comment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = ?`, id.String())
	return scanComment(row)
}

func (r *commentsRepo) FindByTaskIDOrderByCreatedAtAsc(ctx context.Context, taskID idx.ID) ([]comment.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE task_id = ? ORDER BY created_at, id`, taskID.String())
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	comments := []comment.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (`+commentColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.TaskID.String(), c.AuthorID.String(), c.Text,
		encodeTime(c.CreatedAt), encodeTime(c.UpdatedAt),
	)
	return mapErr(err)
}

func (r *commentsRepo) Update(ctx context.Context, c *comment.Comment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET body = ?, updated_at = ? WHERE id = ?`,
		c.Text, encodeTime(c.UpdatedAt), c.ID.String(),
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *commentsRepo) DeleteByID(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *commentsRepo) DeleteByTaskID(ctx context.Context, taskID idx.ID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE task_id = ?`, taskID.String())
	return mapErr(err)
}
