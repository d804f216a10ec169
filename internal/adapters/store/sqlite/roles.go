package sqlite

import (
	"context"
	"strings"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type rolesRepo struct {
	db dbtx
}

const roleColumns = `id, name, permissions, created_at`

func scanRole(row scanner) (*user.Role, error) {
	var (
		r                    user.Role
		id, perms, createdAt string
		err                  error
	)
	if err = row.Scan(&id, &r.Name, &perms, &createdAt); err != nil {
		return nil, mapErr(err)
	}
	r.ID = idx.ID(id)
	r.Permissions = decodePermissions(perms)
	if r.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// Permissions are stored space-delimited.
func encodePermissions(perms []user.Permission) string {
	parts := make([]string, len(perms))
	for i, p := range perms {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func decodePermissions(s string) []user.Permission {
	fields := strings.Fields(s)
	perms := make([]user.Permission, 0, len(fields))
	for _, f := range fields {
		perms = append(perms, user.Permission(f))
	}
	return perms
}

func (r *rolesRepo) FindByID(ctx context.Context, id idx.ID) (*user.Role, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = ?`, id.String())
	return scanRole(row)
}

func (r *rolesRepo) FindByName(ctx context.Context, name string) (*user.Role, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE name = ?`, name)
	return scanRole(row)
}

func (r *rolesRepo) List(ctx context.Context) ([]user.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY name`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	roles := []user.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) Create(ctx context.Context, role *user.Role) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (`+roleColumns+`) VALUES (?, ?, ?, ?)`,
		role.ID.String(), role.Name, encodePermissions(role.Permissions), encodeTime(role.CreatedAt),
	)
	return mapErr(err)
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&n); err != nil {
		return false, mapErr(err)
	}
	return n == 0, nil
}
