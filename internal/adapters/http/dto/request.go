package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/workflow"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgInvalidID    = "must be a valid id"
	msgInvalidDate  = "must be a date in YYYY-MM-DD format"
)

// parseOptionalID parses raw when it is present. Nil or blank means no
// reference; a malformed id is recorded in fields.
func parseOptionalID(fields domain.Fields, field string, raw *string) *idx.ID {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	id, err := idx.Parse(*raw)
	if err != nil {
		fields.Add(field, msgInvalidID)
		return nil
	}
	return &id
}

func parseRequiredID(fields domain.Fields, field, raw string) idx.ID {
	if strings.TrimSpace(raw) == "" {
		fields.Add(field, msgRequired)
		return idx.Zero
	}
	id, err := idx.Parse(raw)
	if err != nil {
		fields.Add(field, msgInvalidID)
		return idx.Zero
	}
	return id
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(timelog.DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// --- Auth ---

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	JobTitle string `json:"job_title"`
	RoleID   string `json:"role_id"`
}

// Validate checks that the role id is well formed. Remaining fields are
// checked by user.Registration.
func (r *RegisterRequest) Validate() error {
	fields := domain.Fields{}
	parseRequiredID(fields, "role_id", r.RoleID)
	return fields.Err()
}

// ToRegistration maps the request to a domain registration. Call after Validate.
func (r *RegisterRequest) ToRegistration() user.Registration {
	return user.Registration{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		JobTitle: r.JobTitle,
		RoleID:   idx.ID(strings.TrimSpace(r.RoleID)),
	}
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Email) == "" {
		fields.Add("email", msgRequired)
	}
	if r.Password == "" {
		fields.Add("password", msgRequired)
	}
	return fields.Err()
}

// --- Users ---

// UpdateProfileRequest is the JSON body for PATCH /users/me.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	JobTitle *string `json:"job_title,omitempty"`
}

// Validate checks that a provided name is not blank.
func (r *UpdateProfileRequest) Validate() error {
	fields := domain.Fields{}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields.Add("name", msgMustNotEmpty)
	}
	return fields.Err()
}

// ToProfileUpdate maps the request to a domain profile update.
func (r *UpdateProfileRequest) ToProfileUpdate() user.ProfileUpdate {
	return user.ProfileUpdate{Name: r.Name, JobTitle: r.JobTitle}
}

// --- Workflows ---

// StageRequest describes one stage of a workflow.
type StageRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Validate checks that the stage has a name.
func (r *StageRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Name) == "" {
		fields.Add("name", msgRequired)
	}
	return fields.Err()
}

// ToStage maps the request to a domain stage.
func (r *StageRequest) ToStage() workflow.Stage {
	return workflow.Stage{Name: r.Name, Order: r.Order}
}

// CreateWorkflowRequest is the JSON body for POST /workflows.
type CreateWorkflowRequest struct {
	Name   string         `json:"name"`
	Stages []StageRequest `json:"stages"`
}

// Validate checks the name. Stage ordering rules are enforced by the domain.
func (r *CreateWorkflowRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Name) == "" {
		fields.Add("name", msgRequired)
	}
	return fields.Err()
}

// ToWorkflow maps the request to a domain workflow.
func (r *CreateWorkflowRequest) ToWorkflow() *workflow.Workflow {
	wf := &workflow.Workflow{Name: r.Name, Stages: make([]workflow.Stage, len(r.Stages))}
	for i := range r.Stages {
		wf.Stages[i] = r.Stages[i].ToStage()
	}
	return wf
}

// --- Projects ---

// CreateProjectRequest is the JSON body for POST /projects.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
func (r *CreateProjectRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Name) == "" {
		fields.Add("name", msgRequired)
	}
	return fields.Err()
}

// UpdateProjectRequest is the JSON body for PATCH /projects/{projectID}.
// Name is required; a nil description is left unchanged.
type UpdateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that the name is present.
func (r *UpdateProjectRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Name) == "" {
		fields.Add("name", msgRequired)
	}
	return fields.Err()
}

// ToUpdate maps the request to a domain project update.
func (r *UpdateProjectRequest) ToUpdate() project.Update {
	return project.Update{Name: r.Name, Description: r.Description}
}

// AttachWorkflowRequest is the JSON body for PUT /projects/{projectID}/workflow.
type AttachWorkflowRequest struct {
	WorkflowID string `json:"workflow_id"`

	workflowID idx.ID
}

// Validate checks that the workflow id is well formed.
func (r *AttachWorkflowRequest) Validate() error {
	fields := domain.Fields{}
	r.workflowID = parseRequiredID(fields, "workflow_id", r.WorkflowID)
	return fields.Err()
}

// ID returns the parsed workflow id. Valid after Validate.
func (r *AttachWorkflowRequest) ID() idx.ID { return r.workflowID }

// --- Tasks ---

// CreateTaskRequest is the JSON body for POST /projects/{projectID}/tasks.
type CreateTaskRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ResponsibleID *string `json:"responsible_id,omitempty"`

	responsibleID *idx.ID
}

// Validate checks the title and the optional responsible id.
func (r *CreateTaskRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Title) == "" {
		fields.Add("title", msgRequired)
	}
	r.responsibleID = parseOptionalID(fields, "responsible_id", r.ResponsibleID)
	return fields.Err()
}

// ToDraft maps the request to a task draft for projectID. Call after Validate.
func (r *CreateTaskRequest) ToDraft(projectID idx.ID) task.Draft {
	return task.Draft{
		Title:         r.Title,
		Description:   r.Description,
		ProjectID:     projectID,
		ResponsibleID: r.responsibleID,
	}
}

// UpdateTaskRequest is the JSON body for PATCH /tasks/{taskID}.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that the title is present.
func (r *UpdateTaskRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Title) == "" {
		fields.Add("title", msgRequired)
	}
	return fields.Err()
}

// ToUpdate maps the request to a domain task update.
func (r *UpdateTaskRequest) ToUpdate() task.Update {
	return task.Update{Title: r.Title, Description: r.Description}
}

// MoveTaskRequest is the JSON body for PUT /tasks/{taskID}/stage.
type MoveTaskRequest struct {
	StageID string `json:"stage_id"`

	stageID idx.ID
}

// Validate checks that the stage id is well formed.
func (r *MoveTaskRequest) Validate() error {
	fields := domain.Fields{}
	r.stageID = parseRequiredID(fields, "stage_id", r.StageID)
	return fields.Err()
}

// ID returns the parsed stage id. Valid after Validate.
func (r *MoveTaskRequest) ID() idx.ID { return r.stageID }

// SetResponsibleRequest is the JSON body for PUT /tasks/{taskID}/responsible.
// A null or empty responsible_id clears the responsible.
type SetResponsibleRequest struct {
	ResponsibleID *string `json:"responsible_id"`

	responsibleID *idx.ID
}

// Validate checks that a provided responsible id is well formed.
func (r *SetResponsibleRequest) Validate() error {
	fields := domain.Fields{}
	r.responsibleID = parseOptionalID(fields, "responsible_id", r.ResponsibleID)
	return fields.Err()
}

// ID returns the parsed responsible id, nil to clear. Valid after Validate.
func (r *SetResponsibleRequest) ID() *idx.ID { return r.responsibleID }

// --- Comments ---

// CommentRequest is the JSON body for creating or editing a comment.
type CommentRequest struct {
	Text string `json:"text"`
}

// Validate checks that the text is present. Length is checked by the domain.
func (r *CommentRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Text) == "" {
		fields.Add("text", msgRequired)
	}
	return fields.Err()
}

// --- Hours ---

// HoursRequest is the JSON body for logging or editing an hour entry.
// Hours accepts a JSON number or a decimal string.
type HoursRequest struct {
	Hours decimal.Decimal `json:"hours"`
	Date  string          `json:"date"`

	date time.Time
}

// Validate checks that the date parses. Hour bounds are checked by the domain.
func (r *HoursRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.Date) == "" {
		fields.Add("date", msgRequired)
	} else if d, err := ParseDate(r.Date); err != nil {
		fields.Add("date", msgInvalidDate)
	} else {
		r.date = d
	}
	return fields.Err()
}

// LogDate returns the parsed date. Valid after Validate.
func (r *HoursRequest) LogDate() time.Time { return r.date }
