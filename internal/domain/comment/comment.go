// Package comment defines task annotations, both user-written and the
// automatic history entries recorded by the task engine.
package comment

import (
	"strings"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// MaxTextLength bounds a comment body.
const MaxTextLength = 4000

// Comment is a note attached to a task. Author and task never change after
// creation.
type Comment struct {
	ID        idx.ID
	TaskID    idx.ID
	AuthorID  idx.ID
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthoredBy reports whether userID wrote the comment.
func (c *Comment) IsAuthoredBy(userID idx.ID) bool {
	return c.AuthorID == userID
}

// ValidateText checks a comment body.
func ValidateText(text string) error {
	switch {
	case strings.TrimSpace(text) == "":
		return domain.NewValidationError("text", domain.MsgRequired)
	case len(text) > MaxTextLength:
		return domain.NewValidationError("text", "must be at most 4000 bytes")
	}
	return nil
}
