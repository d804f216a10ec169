package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// TaskHandler handles task endpoints and task stage transitions.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// GetTask handles GET /api/v1/tasks/{taskID}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{taskID}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.EditTask(r.Context(), id, req.ToUpdate(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskID}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveTask handles PUT /api/v1/tasks/{taskID}/stage.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.MoveToStage(r.Context(), id, req.ID(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// SetResponsible handles PUT /api/v1/tasks/{taskID}/responsible.
func (h *TaskHandler) SetResponsible(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	var req dto.SetResponsibleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.SetResponsible(r.Context(), id, req.ID(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}
