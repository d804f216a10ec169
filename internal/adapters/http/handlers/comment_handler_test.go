package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/comment"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

func newCommentHandler(t *testing.T) (*handlers.CommentHandler, *mocks.MockCommentService) {
	t.Helper()
	svc := mocks.NewMockCommentService(t)
	return handlers.NewCommentHandler(svc), svc
}

func TestAddComment(t *testing.T) {
	t.Parallel()
	h, svc := newCommentHandler(t)

	me, taskID := idx.New(), idx.New()
	c := &comment.Comment{ID: idx.New(), TaskID: taskID, AuthorID: me, Text: "looks good", CreatedAt: testTime, UpdatedAt: testTime}
	svc.EXPECT().AddComment(mock.Anything, taskID, "looks good", me).Return(c, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, dto.CommentRequest{Text: "looks good"}))
	req = asUser(withChiParams(req, map[string]string{"taskID": taskID.String()}), me)
	h.AddComment(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if got := decodeJSON[dto.CommentResponse](t, rec); got.AuthorID != me.String() {
		t.Errorf("AuthorID = %q, want %q", got.AuthorID, me)
	}
}

func TestListComments(t *testing.T) {
	t.Parallel()
	h, svc := newCommentHandler(t)

	taskID := idx.New()
	svc.EXPECT().ListByTask(mock.Anything, taskID).Return([]comment.Comment{{Text: "first"}, {Text: "second"}}, nil)

	rec := httptest.NewRecorder()
	h.ListByTask(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"taskID": taskID.String()}))

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.ListResponse[dto.CommentResponse]](t, rec)
	if got.Count != 2 || got.Items[0].Text != "first" {
		t.Errorf("comments = %+v, want first then second", got.Items)
	}
}

func TestEditComment_NotAuthor(t *testing.T) {
	t.Parallel()
	h, svc := newCommentHandler(t)

	me, id := idx.New(), idx.New()
	svc.EXPECT().EditComment(mock.Anything, id, "edited", me).Return(nil, domain.ErrForbidden)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/", jsonBody(t, dto.CommentRequest{Text: "edited"}))
	req = asUser(withChiParams(req, map[string]string{"commentID": id.String()}), me)
	h.EditComment(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()
	h, svc := newCommentHandler(t)

	me, id := idx.New(), idx.New()
	svc.EXPECT().DeleteComment(mock.Anything, id, me).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteComment(rec, asUser(withChiParams(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"commentID": id.String()}), me))

	requireStatus(t, rec, http.StatusNoContent)
}
