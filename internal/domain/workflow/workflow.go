// Package workflow defines workflow definitions and their ordered stages.
package workflow

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// completionTokens mark a stage as terminal when contained in its name.
var completionTokens = []string{"done", "concluído"}

// Workflow is an ordered sequence of stages a task progresses through.
// Stages are kept sorted by Order ascending.
type Workflow struct {
	ID        idx.ID
	Name      string
	Stages    []Stage
	CreatedAt time.Time
}

// Stage is one ordered step of a workflow.
type Stage struct {
	ID         idx.ID
	WorkflowID idx.ID
	Name       string
	Order      int
}

// IsCompletion reports whether the stage name contains a completion token,
// case-insensitively.
func (s Stage) IsCompletion() bool {
	return IsCompletionName(s.Name)
}

// IsCompletionName reports whether name contains a completion token.
func IsCompletionName(name string) bool {
	lower := strings.ToLower(name)
	for _, tok := range completionTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// Validate checks the workflow name and its stage set.
func (w *Workflow) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(w.Name) == "" {
		fields.Add("name", domain.MsgRequired)
	}

	seen := make(map[int]struct{}, len(w.Stages))
	for i, s := range w.Stages {
		key := fmt.Sprintf("stages[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			fields.Add(key+".name", domain.MsgRequired)
		}
		if s.Order <= 0 {
			fields.Add(key+".order", fmt.Sprintf("must be positive, got %d", s.Order))
			continue
		}
		if _, dup := seen[s.Order]; dup {
			fields.Add(key+".order", fmt.Sprintf("duplicate order %d", s.Order))
		}
		seen[s.Order] = struct{}{}
	}

	return fields.Err()
}

// ValidateNewStage checks that s can be appended without breaking the
// unique-order invariant.
func (w *Workflow) ValidateNewStage(s Stage) error {
	fields := domain.Fields{}

	if strings.TrimSpace(s.Name) == "" {
		fields.Add("name", domain.MsgRequired)
	}
	switch {
	case s.Order <= 0:
		fields.Add("order", fmt.Sprintf("must be positive, got %d", s.Order))
	case w.HasOrder(s.Order):
		fields.Add("order", fmt.Sprintf("duplicate order %d", s.Order))
	}

	return fields.Err()
}

// HasOrder reports whether a stage with the given order exists.
func (w *Workflow) HasOrder(order int) bool {
	return slices.ContainsFunc(w.Stages, func(s Stage) bool { return s.Order == order })
}

// SortStages orders stages by Order ascending.
func (w *Workflow) SortStages() {
	slices.SortFunc(w.Stages, func(a, b Stage) int { return a.Order - b.Order })
}

// FirstStage returns the lowest-order stage, or false for an empty workflow.
func (w *Workflow) FirstStage() (Stage, bool) {
	if len(w.Stages) == 0 {
		return Stage{}, false
	}
	first := w.Stages[0]
	for _, s := range w.Stages[1:] {
		if s.Order < first.Order {
			first = s
		}
	}
	return first, true
}
