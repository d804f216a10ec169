// Package notification defines in-app notifications addressed to a user.
package notification

import (
	"fmt"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// Kind classifies what produced a notification.
type Kind string

const (
	KindTaskAssigned Kind = "task_assigned"
	KindTaskMoved    Kind = "task_moved"
)

// Notification is a message for one user. Read flips once the user
// acknowledges it.
type Notification struct {
	ID        idx.ID
	UserID    idx.ID
	Kind      Kind
	TaskID    idx.ID
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Assigned builds the notification sent to a new task responsible.
func Assigned(userID, taskID idx.ID, taskTitle string, at time.Time) Notification {
	return Notification{
		ID:        idx.NewAt(at),
		UserID:    userID,
		Kind:      KindTaskAssigned,
		TaskID:    taskID,
		Message:   fmt.Sprintf("you are now responsible for task '%s'", taskTitle),
		CreatedAt: at,
	}
}

// Moved builds the notification sent to a responsible when someone else
// moves their task.
func Moved(userID, taskID idx.ID, taskTitle, from, to string, at time.Time) Notification {
	return Notification{
		ID:        idx.NewAt(at),
		UserID:    userID,
		Kind:      KindTaskMoved,
		TaskID:    taskID,
		Message:   fmt.Sprintf("task '%s' moved from '%s' to '%s'", taskTitle, from, to),
		CreatedAt: at,
	}
}
