package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		wantField string
	}{
		{"valid", dto.LoginRequest{Email: "ana@example.com", Password: "secret123"}, ""},
		{"missing email", dto.LoginRequest{Email: "  ", Password: "secret123"}, "email"},
		{"missing password", dto.LoginRequest{Email: "ana@example.com"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	roleID := idx.New()

	ok := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123", RoleID: " " + roleID.String()}
	require.NoError(t, ok.Validate())
	assert.Equal(t, roleID, ok.ToRegistration().RoleID)

	missing := dto.RegisterRequest{Name: "Ana"}
	requireValidationField(t, missing.Validate(), "role_id")

	malformed := dto.RegisterRequest{RoleID: "42"}
	requireValidationField(t, malformed.Validate(), "role_id")
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	empty := dto.UpdateProfileRequest{}
	require.NoError(t, empty.Validate())

	blank := dto.UpdateProfileRequest{Name: stringPtr(" ")}
	requireValidationField(t, blank.Validate(), "name")

	title := dto.UpdateProfileRequest{JobTitle: stringPtr("Lead")}
	require.NoError(t, title.Validate())
	upd := title.ToProfileUpdate()
	assert.Nil(t, upd.Name)
	assert.Equal(t, "Lead", *upd.JobTitle)
}

func TestCreateWorkflowRequest_ToWorkflow(t *testing.T) {
	t.Parallel()

	req := dto.CreateWorkflowRequest{
		Name:   "Kanban",
		Stages: []dto.StageRequest{{Name: "To Do", Order: 1}, {Name: "Done", Order: 2}},
	}
	require.NoError(t, req.Validate())

	wf := req.ToWorkflow()
	assert.Equal(t, "Kanban", wf.Name)
	require.Len(t, wf.Stages, 2)
	assert.Equal(t, "Done", wf.Stages[1].Name)
	assert.Equal(t, 2, wf.Stages[1].Order)

	requireValidationField(t, (&dto.CreateWorkflowRequest{}).Validate(), "name")
	requireValidationField(t, (&dto.StageRequest{Order: 3}).Validate(), "name")
}

func TestProjectRequests_Validate(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.CreateProjectRequest{Description: "x"}).Validate(), "name")
	require.NoError(t, (&dto.CreateProjectRequest{Name: "Apollo"}).Validate())

	requireValidationField(t, (&dto.UpdateProjectRequest{Description: stringPtr("x")}).Validate(), "name")

	upd := dto.UpdateProjectRequest{Name: "Apollo 2", Description: stringPtr("")}
	require.NoError(t, upd.Validate())
	got := upd.ToUpdate()
	assert.Equal(t, "Apollo 2", got.Name)
	require.NotNil(t, got.Description)
	assert.Empty(t, *got.Description)
}

func TestAttachWorkflowRequest_Validate(t *testing.T) {
	t.Parallel()

	wfID := idx.New()
	req := dto.AttachWorkflowRequest{WorkflowID: wfID.String()}
	require.NoError(t, req.Validate())
	assert.Equal(t, wfID, req.ID())

	requireValidationField(t, (&dto.AttachWorkflowRequest{}).Validate(), "workflow_id")
	requireValidationField(t, (&dto.AttachWorkflowRequest{WorkflowID: "nope"}).Validate(), "workflow_id")
}

func TestCreateTaskRequest_ToDraft(t *testing.T) {
	t.Parallel()

	projectID := idx.New()
	devID := idx.New()

	tests := []struct {
		name            string
		req             dto.CreateTaskRequest
		wantField       string
		wantResponsible *idx.ID
	}{
		{
			name:            "with responsible",
			req:             dto.CreateTaskRequest{Title: "Fix bug", ResponsibleID: stringPtr(devID.String())},
			wantResponsible: &devID,
		},
		{
			name: "without responsible",
			req:  dto.CreateTaskRequest{Title: "Fix bug"},
		},
		{
			name: "empty responsible means none",
			req:  dto.CreateTaskRequest{Title: "Fix bug", ResponsibleID: stringPtr("")},
		},
		{
			name:      "missing title",
			req:       dto.CreateTaskRequest{},
			wantField: "title",
		},
		{
			name:      "malformed responsible",
			req:       dto.CreateTaskRequest{Title: "Fix bug", ResponsibleID: stringPtr("7")},
			wantField: "responsible_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			require.NoError(t, err)

			d := tt.req.ToDraft(projectID)
			assert.Equal(t, projectID, d.ProjectID)
			assert.Equal(t, tt.wantResponsible, d.ResponsibleID)
		})
	}
}

func TestTaskTransitionRequests_Validate(t *testing.T) {
	t.Parallel()

	stageID := idx.New()
	move := dto.MoveTaskRequest{StageID: stageID.String()}
	require.NoError(t, move.Validate())
	assert.Equal(t, stageID, move.ID())
	requireValidationField(t, (&dto.MoveTaskRequest{}).Validate(), "stage_id")

	var unassign dto.SetResponsibleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"responsible_id":null}`), &unassign))
	require.NoError(t, unassign.Validate())
	assert.Nil(t, unassign.ID())

	requireValidationField(t, (&dto.SetResponsibleRequest{ResponsibleID: stringPtr("x")}).Validate(), "responsible_id")
	requireValidationField(t, (&dto.UpdateTaskRequest{}).Validate(), "title")
	requireValidationField(t, (&dto.CommentRequest{Text: "\n"}).Validate(), "text")
}

func TestHoursRequest_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantHours string
		wantDate  time.Time
		wantField string
	}{
		{
			name:      "number",
			body:      `{"hours": 1.5, "date": "2025-03-10"}`,
			wantHours: "1.5",
			wantDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "string",
			body:      `{"hours": "0.25", "date": "2025-03-11"}`,
			wantHours: "0.25",
			wantDate:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "missing date",
			body:      `{"hours": 2}`,
			wantField: "date",
		},
		{
			name:      "bad date",
			body:      `{"hours": 2, "date": "10/03/2025"}`,
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.HoursRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, req.Hours.String())
			assert.True(t, tt.wantDate.Equal(req.LogDate()), "LogDate() = %v", req.LogDate())
		})
	}
}
