package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// UserHandler handles the directory endpoints and the caller's own views.
type UserHandler struct {
	dir   ports.DirectoryService
	tasks ports.TaskService
	hours ports.TimeLedgerService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(dir ports.DirectoryService, tasks ports.TaskService, hours ports.TimeLedgerService) *UserHandler {
	return &UserHandler{dir: dir, tasks: tasks, hours: hours}
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	u, err := h.dir.GetUser(r.Context(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateMe handles PATCH /api/v1/users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.dir.UpdateProfile(r.Context(), me, req.ToProfileUpdate())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// GetUser handles GET /api/v1/users/{userID}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	u, err := h.dir.GetUser(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// DeleteUser handles DELETE /api/v1/users/{userID}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.dir.DeleteUser(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyTasks handles GET /api/v1/users/me/tasks.
func (h *UserHandler) MyTasks(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByResponsible(r.Context(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// MyHours handles GET /api/v1/users/me/hours?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *UserHandler) MyHours(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	rng, err := parseRange(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.hours.ListByUser(r.Context(), me, rng)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHoursListResponse(entries))
}

// ListRoles handles GET /api/v1/roles.
func (h *UserHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.dir.ListRoles(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRoleListResponse(roles))
}
