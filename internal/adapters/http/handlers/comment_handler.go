package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// CommentHandler handles task comments.
type CommentHandler struct {
	svc ports.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc ports.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// ListByTask handles GET /api/v1/tasks/{taskID}/comments.
func (h *CommentHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	cs, err := h.svc.ListByTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCommentListResponse(cs))
}

// AddComment handles POST /api/v1/tasks/{taskID}/comments.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), id, req.Text, me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCommentResponse(c))
}

// EditComment handles PUT /api/v1/comments/{commentID}.
func (h *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "commentID")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.EditComment(r.Context(), id, req.Text, me)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCommentResponse(c))
}

// DeleteComment handles DELETE /api/v1/comments/{commentID}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	me, ok := executor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "commentID")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id, me); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
