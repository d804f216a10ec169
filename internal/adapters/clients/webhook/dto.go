package webhook

import (
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
)

// NotificationDTO is the JSON body posted to the notification channel.
type NotificationDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
	TaskID    string `json:"task_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ToNotificationDTO converts a domain notification to its wire form.
// Timestamps are RFC 3339 in UTC.
func ToNotificationDTO(n notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Kind:      string(n.Kind),
		TaskID:    n.TaskID.String(),
		Message:   n.Message,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
