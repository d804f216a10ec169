package sqlite

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

type hourEntriesRepo struct {
	db dbtx
}

const hourColumns = `id, task_id, user_id, hours, log_date, created_at`

func scanEntry(row scanner) (*timelog.Entry, error) {
	var (
		e                     timelog.Entry
		id, taskID, userID    string
		hours, logDate, stamp string
		err                   error
	)
	if err = row.Scan(&id, &taskID, &userID, &hours, &logDate, &stamp); err != nil {
		return nil, mapErr(err)
	}
	e.ID, e.TaskID, e.UserID = idx.ID(id), idx.ID(taskID), idx.ID(userID)
	if e.Hours, err = decodeHours(hours); err != nil {
		return nil, err
	}
	if e.LogDate, err = decodeDate(logDate); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = decodeTime(stamp); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *hourEntriesRepo) list(ctx context.Context, query string, args ...any) ([]timelog.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	entries := []timelog.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// sum adds hour strings in decimal; SQL SUM would go through REAL.
func (r *hourEntriesRepo) sum(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return decimal.Zero, mapErr(err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, mapErr(err)
		}
		h, err := decodeHours(raw)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(h)
	}
	return total, rows.Err()
}

func (r *hourEntriesRepo) FindByID(ctx context.Context, id idx.ID) (*timelog.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+hourColumns+` FROM hour_entries WHERE id = ?`, id.String())
	return scanEntry(row)
}

func (r *hourEntriesRepo) FindByTaskID(ctx context.Context, taskID idx.ID) ([]timelog.Entry, error) {
	return r.list(ctx,
		`SELECT `+hourColumns+` FROM hour_entries WHERE task_id = ? ORDER BY log_date, created_at, id`,
		taskID.String())
}

func (r *hourEntriesRepo) FindByUserAndDateRange(ctx context.Context, userID idx.ID, from, to time.Time) ([]timelog.Entry, error) {
	return r.list(ctx, `
		SELECT `+hourColumns+` FROM hour_entries
		WHERE user_id = ? AND log_date BETWEEN ? AND ?
		ORDER BY log_date, created_at, id`,
		userID.String(), encodeDate(from), encodeDate(to))
}

func (r *hourEntriesRepo) SumHoursByTaskID(ctx context.Context, taskID idx.ID) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT hours FROM hour_entries WHERE task_id = ?`, taskID.String())
}

func (r *hourEntriesRepo) SumHoursByProjectID(ctx context.Context, projectID idx.ID) (decimal.Decimal, error) {
	return r.sum(ctx, `
		SELECT h.hours FROM hour_entries h
		JOIN tasks t ON t.id = h.task_id
		WHERE t.project_id = ?`,
		projectID.String())
}

func (r *hourEntriesRepo) Create(ctx context.Context, e *timelog.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hour_entries (`+hourColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.TaskID.String(), e.UserID.String(), e.Hours.String(),
		encodeDate(e.LogDate), encodeTime(e.CreatedAt),
	)
	return mapErr(err)
}

func (r *hourEntriesRepo) Update(ctx context.Context, e *timelog.Entry) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE hour_entries SET hours = ?, log_date = ? WHERE id = ?`,
		e.Hours.String(), encodeDate(e.LogDate), e.ID.String(),
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *hourEntriesRepo) DeleteByID(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hour_entries WHERE id = ?`, id.String())
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *hourEntriesRepo) DeleteByTaskID(ctx context.Context, taskID idx.ID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hour_entries WHERE task_id = ?`, taskID.String())
	return mapErr(err)
}
