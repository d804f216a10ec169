// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// ProjectHandler handles project endpoints and the tasks nested under a
// project.
type ProjectHandler struct {
	projects ports.ProjectService
	tasks    ports.TaskService
	hours    ports.TimeLedgerService
}

// NewProjectHandler creates a new ProjectHandler with the given service ports.
func NewProjectHandler(projects ports.ProjectService, tasks ports.TaskService, hours ports.TimeLedgerService) *ProjectHandler {
	return &ProjectHandler{projects: projects, tasks: tasks, hours: hours}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects. The caller becomes the
// project's manager.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.projects.CreateProject(r.Context(), req.Name, req.Description, me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{projectID}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	p, err := h.projects.GetProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateProject handles PATCH /api/v1/projects/{projectID}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.projects.EditProject(r.Context(), id, req.ToUpdate(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(updated))
}

// DeleteProject handles DELETE /api/v1/projects/{projectID}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachWorkflow handles PUT /api/v1/projects/{projectID}/workflow.
func (h *ProjectHandler) AttachWorkflow(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req dto.AttachWorkflowRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.projects.AttachWorkflow(r.Context(), id, req.ID(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// Report handles GET /api/v1/projects/{projectID}/report.
func (h *ProjectHandler) Report(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	rep, err := h.projects.GenerateReport(r.Context(), id, me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReportResponse(rep))
}

// TotalHours handles GET /api/v1/projects/{projectID}/hours.
func (h *ProjectHandler) TotalHours(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	total, err := h.hours.TotalHoursForProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HoursTotalResponse{Total: total.String()})
}

// ListTasks handles GET /api/v1/projects/{projectID}/tasks.
func (h *ProjectHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/projects/{projectID}/tasks.
func (h *ProjectHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.tasks.CreateTask(r.Context(), req.ToDraft(id), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}
