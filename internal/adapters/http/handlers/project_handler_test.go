package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

type projectMocks struct {
	projects *mocks.MockProjectService
	tasks    *mocks.MockTaskService
	hours    *mocks.MockTimeLedgerService
}

func newProjectHandler(t *testing.T) (*handlers.ProjectHandler, projectMocks) {
	t.Helper()
	m := projectMocks{
		projects: mocks.NewMockProjectService(t),
		tasks:    mocks.NewMockTaskService(t),
		hours:    mocks.NewMockTimeLedgerService(t),
	}
	return handlers.NewProjectHandler(m.projects, m.tasks, m.hours), m
}

// --- ListProjects ---

func TestListProjects_Success(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	m.projects.EXPECT().ListProjects(mock.Anything).Return([]project.Project{validProject(idx.New())}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[dto.ProjectResponse]](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListProjects_ServiceError(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	m.projects.EXPECT().ListProjects(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- CreateProject ---

func TestCreateProject_CallerBecomesManager(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	me := idx.New()
	created := validProject(me)
	m.projects.EXPECT().CreateProject(mock.Anything, "Apollo", "Moon landing", me).Return(&created, nil)

	body := jsonBody(t, dto.CreateProjectRequest{Name: "Apollo", Description: "Moon landing"})
	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/projects", body), me)
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.ManagerID != me.String() {
		t.Errorf("ManagerID = %q, want %q", resp.ManagerID, me)
	}
	if resp.WorkflowID != nil {
		t.Errorf("WorkflowID = %v, want nil", *resp.WorkflowID)
	}
}

func TestCreateProject_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		authed     bool
		svcErr     error
		wantStatus int
	}{
		{"unauthenticated", `{"name":"Apollo"}`, false, nil, http.StatusUnauthorized},
		{"invalid JSON", `{bad`, true, nil, http.StatusBadRequest},
		{"missing name", `{"description":"x"}`, true, nil, http.StatusBadRequest},
		{"developer forbidden", `{"name":"Apollo"}`, true, domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newProjectHandler(t)

			me := idx.New()
			if tt.svcErr != nil {
				m.projects.EXPECT().CreateProject(mock.Anything, "Apollo", "", me).Return(nil, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewBufferString(tt.body))
			if tt.authed {
				req = asUser(req, me)
			}
			h.CreateProject(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- GetProject ---

func TestGetProject_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/abc", nil)
	req = withChiParams(req, map[string]string{"projectID": "abc"})
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetProject_NotFound(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	id := idx.New()
	m.projects.EXPECT().GetProject(mock.Anything, id).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+id.String(), nil)
	req = withChiParams(req, map[string]string{"projectID": id.String()})
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetProject_LowercaseIDIsCanonicalized(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	p := validProject(idx.New())
	lower := strings.ToLower(p.ID.String())
	m.projects.EXPECT().GetProject(mock.Anything, p.ID).Return(&p, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+lower, nil)
	req = withChiParams(req, map[string]string{"projectID": lower})
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.ID != p.ID.String() {
		t.Errorf("ID = %q, want %q", resp.ID, p.ID)
	}
}

// --- UpdateProject ---

func TestUpdateProject_Success(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	me := idx.New()
	p := validProject(me)
	p.Name = "Apollo 2"
	m.projects.EXPECT().
		EditProject(mock.Anything, p.ID, mock.MatchedBy(func(u project.Update) bool {
			return u.Name == "Apollo 2" && u.Description == nil
		}), me).
		Return(&p, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/", jsonBody(t, map[string]string{"name": "Apollo 2"}))
	req = asUser(withChiParams(req, map[string]string{"projectID": p.ID.String()}), me)
	h.UpdateProject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.ProjectResponse](t, rec); got.Name != "Apollo 2" {
		t.Errorf("Name = %q, want %q", got.Name, "Apollo 2")
	}
}

// --- DeleteProject ---

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not the manager", domain.ErrForbidden, http.StatusForbidden},
		{"missing", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newProjectHandler(t)

			me, id := idx.New(), idx.New()
			m.projects.EXPECT().DeleteProject(mock.Anything, id, me).Return(tt.svcErr)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			req = asUser(withChiParams(req, map[string]string{"projectID": id.String()}), me)
			h.DeleteProject(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- AttachWorkflow ---

func TestAttachWorkflow(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	me, wfID := idx.New(), idx.New()
	p := validProject(me)
	p.WorkflowID = &wfID
	m.projects.EXPECT().AttachWorkflow(mock.Anything, p.ID, wfID, me).Return(&p, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/", jsonBody(t, dto.AttachWorkflowRequest{WorkflowID: wfID.String()}))
	req = asUser(withChiParams(req, map[string]string{"projectID": p.ID.String()}), me)
	h.AttachWorkflow(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.WorkflowID == nil || *resp.WorkflowID != wfID.String() {
		t.Errorf("WorkflowID = %v, want %q", resp.WorkflowID, wfID)
	}
}

// --- Report ---

func TestReport_Success(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	me := idx.New()
	p := validProject(me)
	rep := project.NewReport(&p, "Marta", 4, 1, decimal.NewFromInt(3))
	m.projects.EXPECT().GenerateReport(mock.Anything, p.ID, me).Return(&rep, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = asUser(withChiParams(req, map[string]string{"projectID": p.ID.String()}), me)
	h.Report(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ReportResponse](t, rec)
	if resp.Progress != "25.00%" {
		t.Errorf("Progress = %q, want %q", resp.Progress, "25.00%")
	}
	if resp.TotalTasks != 4 || resp.CompletedTasks != 1 {
		t.Errorf("tasks = %d/%d, want 1/4", resp.CompletedTasks, resp.TotalTasks)
	}
}

// --- TotalHours ---

func TestTotalHours_ZeroWhenEmpty(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	id := idx.New()
	m.hours.EXPECT().TotalHoursForProject(mock.Anything, id).Return(decimal.Zero, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"projectID": id.String()})
	h.TotalHours(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.HoursTotalResponse](t, rec); got.Total != "0" {
		t.Errorf("Total = %q, want %q", got.Total, "0")
	}
}

// --- Tasks under a project ---

func TestCreateTask_MapsDraft(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	me, projectID, devID := idx.New(), idx.New(), idx.New()
	created := validTask(projectID)
	created.ResponsibleID = &devID

	m.tasks.EXPECT().
		CreateTask(mock.Anything, mock.MatchedBy(func(d task.Draft) bool {
			return d.ProjectID == projectID && d.Title == "Fix bug" && idx.Equal(d.ResponsibleID, devID)
		}), me).
		Return(&created, nil)

	body := jsonBody(t, map[string]any{"title": "Fix bug", "responsible_id": devID.String()})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req = asUser(withChiParams(req, map[string]string{"projectID": projectID.String()}), me)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ResponsibleID == nil || *resp.ResponsibleID != devID.String() {
		t.Errorf("ResponsibleID = %v, want %q", resp.ResponsibleID, devID)
	}
}

func TestCreateTask_NoWorkflowIsConflict(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	me, projectID := idx.New(), idx.New()
	m.tasks.EXPECT().CreateTask(mock.Anything, mock.Anything, me).Return(nil, domain.ErrIllegalState)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{"title": "Fix bug"}))
	req = asUser(withChiParams(req, map[string]string{"projectID": projectID.String()}), me)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestListTasks(t *testing.T) {
	t.Parallel()
	h, m := newProjectHandler(t)

	projectID := idx.New()
	m.tasks.EXPECT().ListByProject(mock.Anything, projectID).
		Return([]task.Task{validTask(projectID), validTask(projectID)}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"projectID": projectID.String()})
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.ListResponse[dto.TaskResponse]](t, rec); got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
}
