package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// HoursHandler handles hour entries.
type HoursHandler struct {
	svc ports.TimeLedgerService
}

// NewHoursHandler creates a new HoursHandler.
func NewHoursHandler(svc ports.TimeLedgerService) *HoursHandler {
	return &HoursHandler{svc: svc}
}

// ListByTask handles GET /api/v1/tasks/{taskID}/hours. The response
// carries the entries and their exact total.
func (h *HoursHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	entries, err := h.svc.ListByTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHoursListResponse(entries))
}

// TaskTotal handles GET /api/v1/tasks/{taskID}/hours/total.
func (h *HoursHandler) TaskTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	total, err := h.svc.TotalHoursForTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HoursTotalResponse{Total: total.String()})
}

// LogHours handles POST /api/v1/tasks/{taskID}/hours.
func (h *HoursHandler) LogHours(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	var req dto.HoursRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.svc.LogHours(r.Context(), id, req.Hours, req.LogDate(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToHourEntryResponse(e))
}

// EditEntry handles PUT /api/v1/hours/{entryID}.
func (h *HoursHandler) EditEntry(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}

	var req dto.HoursRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.svc.EditEntry(r.Context(), id, req.Hours, req.LogDate(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHourEntryResponse(e))
}

// DeleteEntry handles DELETE /api/v1/hours/{entryID}.
func (h *HoursHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "entryID")
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
