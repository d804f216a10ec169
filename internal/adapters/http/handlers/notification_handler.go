package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// NotificationHandler exposes the caller's notifications.
type NotificationHandler struct {
	svc ports.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}

	ns, err := h.svc.ListForUser(r.Context(), me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNotificationListResponse(ns))
}

// MarkRead handles POST /api/v1/notifications/{notificationID}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "notificationID")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
