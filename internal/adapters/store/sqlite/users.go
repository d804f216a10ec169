package sqlite

import (
	"context"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, job_title, role_id, created_at, updated_at`

func scanUser(row scanner) (*user.User, error) {
	var (
		u                    user.User
		id, roleID           string
		createdAt, updatedAt string
		err                  error
	)
	if err = row.Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &u.JobTitle, &roleID, &createdAt, &updatedAt); err != nil {
		return nil, mapErr(err)
	}
	u.ID, u.RoleID = idx.ID(id), idx.ID(roleID)
	if u.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usersRepo) FindByID(ctx context.Context, id idx.ID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (r *usersRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, user.NormalizeEmail(email))
	return scanUser(row)
}

func (r *usersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`, user.NormalizeEmail(email),
	).Scan(&exists)
	return exists, mapErr(err)
}

func (r *usersRepo) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Name, user.NormalizeEmail(u.Email), u.PasswordHash, u.JobTitle,
		u.RoleID.String(), encodeTime(u.CreatedAt), encodeTime(u.UpdatedAt),
	)
	return mapErr(err)
}

func (r *usersRepo) Update(ctx context.Context, u *user.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, job_title = ?, role_id = ?, updated_at = ? WHERE id = ?`,
		u.Name, u.JobTitle, u.RoleID.String(), encodeTime(u.UpdatedAt), u.ID.String(),
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

// DeleteByID removes the user and the notifications addressed to them.
func (r *usersRepo) DeleteByID(ctx context.Context, id idx.ID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE user_id = ?`, id.String()); err != nil {
		return mapErr(err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) IsReferenced(ctx context.Context, id idx.ID) (bool, error) {
	var referenced bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM projects WHERE manager_id = ?1)
		    OR EXISTS (SELECT 1 FROM tasks WHERE responsible_id = ?1)
		    OR EXISTS (SELECT 1 FROM comments WHERE author_id = ?1)
		    OR EXISTS (SELECT 1 FROM hour_entries WHERE user_id = ?1)`,
		id.String(),
	).Scan(&referenced)
	return referenced, mapErr(err)
}
