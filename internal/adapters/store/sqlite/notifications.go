package sqlite

import (
	"context"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type notificationsRepo struct {
	db dbtx
}

const notificationColumns = `id, user_id, kind, task_id, message, is_read, created_at`

func (r *notificationsRepo) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID.String(), n.UserID.String(), string(n.Kind), n.TaskID.String(), n.Message, n.Read,
		encodeTime(n.CreatedAt),
	)
	return mapErr(err)
}

func (r *notificationsRepo) FindByUserID(ctx context.Context, userID idx.ID) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID.String())
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []notification.Notification{}
	for rows.Next() {
		var (
			n                         notification.Notification
			id, uid, kind, taskID, at string
		)
		if err := rows.Scan(&id, &uid, &kind, &taskID, &n.Message, &n.Read, &at); err != nil {
			return nil, mapErr(err)
		}
		n.ID, n.UserID, n.TaskID = idx.ID(id), idx.ID(uid), idx.ID(taskID)
		n.Kind = notification.Kind(kind)
		if n.CreatedAt, err = decodeTime(at); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) MarkRead(ctx context.Context, id, userID idx.ID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`, id.String(), userID.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
