// Package timelog defines hour entries logged against tasks. Hours are
// fixed-point decimals so aggregated totals never drift.
package timelog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// DateLayout is the calendar-day format for log dates.
const DateLayout = time.DateOnly

// Entry records hours a user spent on a task on a given day.
type Entry struct {
	ID        idx.ID
	TaskID    idx.ID
	UserID    idx.ID
	Hours     decimal.Decimal
	LogDate   time.Time
	CreatedAt time.Time
}

// IsAuthoredBy reports whether userID logged the entry.
func (e *Entry) IsAuthoredBy(userID idx.ID) bool {
	return e.UserID == userID
}

// ValidateHours checks hours are non-negative with at most two decimals, and
// that the log date is set. There is no upper bound: one entry may cover
// several days of work.
func ValidateHours(hours decimal.Decimal, date time.Time) error {
	fields := domain.Fields{}

	switch {
	case hours.IsNegative():
		fields.Add("hours", "must not be negative")
	case !hours.Equal(hours.Round(2)):
		fields.Add("hours", fmt.Sprintf("must have at most 2 decimal places, got %s", hours))
	}
	if date.IsZero() {
		fields.Add("date", domain.MsgRequired)
	}

	return fields.Err()
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Sum adds the hours of all entries. It returns zero for an empty slice.
func Sum(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Hours)
	}
	return total
}

// Range is an inclusive calendar-day interval.
type Range struct {
	From time.Time
	To   time.Time
}

// Validate rejects a missing bound or a From after To.
func (r Range) Validate() error {
	fields := domain.Fields{}

	if r.From.IsZero() {
		fields.Add("from", domain.MsgRequired)
	}
	if r.To.IsZero() {
		fields.Add("to", domain.MsgRequired)
	}
	if !r.From.IsZero() && !r.To.IsZero() && Day(r.From).After(Day(r.To)) {
		fields.Add("from", "must not be after to")
	}

	return fields.Err()
}
