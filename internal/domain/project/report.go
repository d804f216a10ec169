package project

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

var hundred = decimal.NewFromInt(100)

// Report summarizes a project's progress.
type Report struct {
	ProjectID      idx.ID
	ProjectName    string
	ManagerName    string
	TotalTasks     int
	CompletedTasks int
	// Progress is the completed percentage rounded to 2 decimal places.
	Progress    decimal.Decimal
	HoursLogged decimal.Decimal
}

// NewReport computes progress from task counts. Progress is zero when the
// project has no tasks.
func NewReport(p *Project, managerName string, total, completed int, hours decimal.Decimal) Report {
	progress := decimal.Zero
	if total > 0 {
		progress = decimal.NewFromInt(int64(completed)).
			Mul(hundred).
			DivRound(decimal.NewFromInt(int64(total)), 2)
	}

	return Report{
		ProjectID:      p.ID,
		ProjectName:    p.Name,
		ManagerName:    managerName,
		TotalTasks:     total,
		CompletedTasks: completed,
		Progress:       progress,
		HoursLogged:    hours,
	}
}

// ProgressText formats progress as a percentage, e.g. "25.00%".
func (r Report) ProgressText() string {
	return r.Progress.StringFixed(2) + "%"
}

// Summary renders the report as plain text.
func (r Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project Report: %s\n", r.ProjectName)
	b.WriteString("============================================\n")
	fmt.Fprintf(&b, "Manager: %s\n", r.ManagerName)
	fmt.Fprintf(&b, "Total Tasks: %d\n", r.TotalTasks)
	fmt.Fprintf(&b, "Completed Tasks: %d\n", r.CompletedTasks)
	fmt.Fprintf(&b, "Progress: %s\n", r.ProgressText())
	fmt.Fprintf(&b, "Hours Logged: %s\n", r.HoursLogged.StringFixed(2))
	return b.String()
}
