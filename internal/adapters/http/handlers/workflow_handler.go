package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// WorkflowHandler handles workflow and stage definitions.
type WorkflowHandler struct {
	svc ports.WorkflowService
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(svc ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{svc: svc}
}

// ListWorkflows handles GET /api/v1/workflows.
func (h *WorkflowHandler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	wfs, err := h.svc.ListWorkflows(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkflowListResponse(wfs))
}

// CreateWorkflow handles POST /api/v1/workflows.
func (h *WorkflowHandler) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	var req dto.CreateWorkflowRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateWorkflow(r.Context(), req.ToWorkflow(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToWorkflowResponse(created))
}

// GetWorkflow handles GET /api/v1/workflows/{workflowID}.
func (h *WorkflowHandler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "workflowID")
	if !ok {
		return
	}

	wf, err := h.svc.GetWorkflow(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkflowResponse(wf))
}

// DeleteWorkflow handles DELETE /api/v1/workflows/{workflowID}.
func (h *WorkflowHandler) DeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "workflowID")
	if !ok {
		return
	}

	if err := h.svc.DeleteWorkflow(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddStage handles POST /api/v1/workflows/{workflowID}/stages.
func (h *WorkflowHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "workflowID")
	if !ok {
		return
	}

	var req dto.StageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.svc.AddStage(r.Context(), id, req.ToStage(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStageResponse(st))
}
