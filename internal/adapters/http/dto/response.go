// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// ListResponse wraps a collection with its size.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// toList converts each element of in with fn.
func toList[E, T any](in []E, fn func(*E) T) ListResponse[T] {
	items := make([]T, len(in))
	for i := range in {
		items[i] = fn(&in[i])
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optionalID(id *idx.ID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// --- Auth ---

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   string       `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// ToTokenResponse builds the login response.
func ToTokenResponse(tok ports.AccessToken, u *user.User) TokenResponse {
	return TokenResponse{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		ExpiresAt:   formatTime(tok.ExpiresAt),
		User:        ToUserResponse(u),
	}
}

// --- Users ---

// UserResponse represents a user. The password hash is never exposed.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	JobTitle  string `json:"job_title"`
	RoleID    string `json:"role_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToUserResponse converts a domain user.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		JobTitle:  u.JobTitle,
		RoleID:    u.RoleID.String(),
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

// RoleResponse represents a role with its permissions.
type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// ToRoleResponse converts a domain role.
func ToRoleResponse(r *user.Role) RoleResponse {
	perms := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = p.String()
	}
	return RoleResponse{ID: r.ID.String(), Name: r.Name, Permissions: perms}
}

// ToRoleListResponse converts a slice of roles.
func ToRoleListResponse(roles []user.Role) ListResponse[RoleResponse] {
	return toList(roles, ToRoleResponse)
}

// --- Workflows ---

// StageResponse represents a workflow stage.
type StageResponse struct {
	ID         string `json:"id"`
	WorkflowID string `json:"workflow_id"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
	Completion bool   `json:"completion"`
}

// ToStageResponse converts a domain stage.
func ToStageResponse(s *workflow.Stage) StageResponse {
	return StageResponse{
		ID:         s.ID.String(),
		WorkflowID: s.WorkflowID.String(),
		Name:       s.Name,
		Order:      s.Order,
		Completion: s.IsCompletion(),
	}
}

// WorkflowResponse represents a workflow with its ordered stages.
type WorkflowResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stages    []StageResponse `json:"stages"`
	CreatedAt string          `json:"created_at"`
}

// ToWorkflowResponse converts a domain workflow.
func ToWorkflowResponse(w *workflow.Workflow) WorkflowResponse {
	stages := make([]StageResponse, len(w.Stages))
	for i := range w.Stages {
		stages[i] = ToStageResponse(&w.Stages[i])
	}
	return WorkflowResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		Stages:    stages,
		CreatedAt: formatTime(w.CreatedAt),
	}
}

// ToWorkflowListResponse converts a slice of workflows.
func ToWorkflowListResponse(wfs []workflow.Workflow) ListResponse[WorkflowResponse] {
	return toList(wfs, ToWorkflowResponse)
}

// --- Projects ---

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ManagerID   string  `json:"manager_id"`
	WorkflowID  *string `json:"workflow_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		ManagerID:   p.ManagerID.String(),
		WorkflowID:  optionalID(p.WorkflowID),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

// ToProjectListResponse converts a slice of projects.
func ToProjectListResponse(projects []project.Project) ListResponse[ProjectResponse] {
	return toList(projects, ToProjectResponse)
}

// ReportResponse carries a project report. Progress is formatted with two
// decimals and a percent sign, e.g. "25.00%".
type ReportResponse struct {
	ProjectID      string `json:"project_id"`
	ProjectName    string `json:"project_name"`
	ManagerName    string `json:"manager_name"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
	Progress       string `json:"progress"`
	HoursLogged    string `json:"hours_logged"`
	Summary        string `json:"summary"`
}

// ToReportResponse converts a domain report.
func ToReportResponse(r *project.Report) ReportResponse {
	return ReportResponse{
		ProjectID:      r.ProjectID.String(),
		ProjectName:    r.ProjectName,
		ManagerName:    r.ManagerName,
		TotalTasks:     r.TotalTasks,
		CompletedTasks: r.CompletedTasks,
		Progress:       r.ProgressText(),
		HoursLogged:    r.HoursLogged.String(),
		Summary:        r.Summary(),
	}
}

// --- Tasks ---

// TaskResponse represents a task.
type TaskResponse struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"project_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ResponsibleID *string `json:"responsible_id"`
	StageID       string  `json:"stage_id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	CompletedAt   *string `json:"completed_at"`
}

// ToTaskResponse converts a domain task.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:            t.ID.String(),
		ProjectID:     t.ProjectID.String(),
		Title:         t.Title,
		Description:   t.Description,
		ResponsibleID: optionalID(t.ResponsibleID),
		StageID:       t.StageID.String(),
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
	}
	if t.CompletedAt != nil {
		s := formatTime(*t.CompletedAt)
		resp.CompletedAt = &s
	}
	return resp
}

// ToTaskListResponse converts a slice of tasks.
func ToTaskListResponse(tasks []task.Task) ListResponse[TaskResponse] {
	return toList(tasks, ToTaskResponse)
}

// --- Comments ---

// CommentResponse represents a comment.
type CommentResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToCommentResponse converts a domain comment.
func ToCommentResponse(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		TaskID:    c.TaskID.String(),
		AuthorID:  c.AuthorID.String(),
		Text:      c.Text,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

// ToCommentListResponse converts a slice of comments.
func ToCommentListResponse(cs []comment.Comment) ListResponse[CommentResponse] {
	return toList(cs, ToCommentResponse)
}

// --- Hours ---

// HourEntryResponse represents an hour entry. Hours is a decimal string.
type HourEntryResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	UserID    string `json:"user_id"`
	Hours     string `json:"hours"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// ToHourEntryResponse converts a domain entry.
func ToHourEntryResponse(e *timelog.Entry) HourEntryResponse {
	return HourEntryResponse{
		ID:        e.ID.String(),
		TaskID:    e.TaskID.String(),
		UserID:    e.UserID.String(),
		Hours:     e.Hours.String(),
		Date:      e.LogDate.Format(timelog.DateLayout),
		CreatedAt: formatTime(e.CreatedAt),
	}
}

// HoursListResponse lists entries together with their total.
type HoursListResponse struct {
	ListResponse[HourEntryResponse]
	Total string `json:"total"`
}

// ToHoursListResponse converts entries and sums their hours.
func ToHoursListResponse(entries []timelog.Entry) HoursListResponse {
	return HoursListResponse{
		ListResponse: toList(entries, ToHourEntryResponse),
		Total:        timelog.Sum(entries).String(),
	}
}

// HoursTotalResponse carries a hours total for a task or project.
type HoursTotalResponse struct {
	Total string `json:"total"`
}

// --- Notifications ---

// NotificationResponse represents an in-app notification.
type NotificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	TaskID    string `json:"task_id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// ToNotificationResponse converts a domain notification.
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		TaskID:    n.TaskID.String(),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

// ToNotificationListResponse converts a slice of notifications.
func ToNotificationListResponse(ns []notification.Notification) ListResponse[NotificationResponse] {
	return toList(ns, ToNotificationResponse)
}
