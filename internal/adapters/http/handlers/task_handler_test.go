package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	return handlers.NewTaskHandler(svc), svc
}

func taskRequest(t *testing.T, method string, body any, taskID, userID idx.ID) *http.Request {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		buf = jsonBody(t, body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, "/api/v1/tasks/"+taskID.String(), buf)
	return asUser(withChiParams(req, map[string]string{"taskID": taskID.String()}), userID)
}

func TestGetTask(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	tk := validTask(idx.New())
	svc.EXPECT().GetTask(mock.Anything, tk.ID).Return(&tk, nil)

	rec := httptest.NewRecorder()
	h.GetTask(rec, taskRequest(t, http.MethodGet, nil, tk.ID, idx.New()))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.TaskResponse](t, rec); got.ID != tk.ID.String() {
		t.Errorf("ID = %q, want %q", got.ID, tk.ID)
	}
}

func TestMoveTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		svcErr     error
		wantStatus int
	}{
		{"moved", nil, nil, http.StatusOK},
		{"foreign stage", nil, domain.ErrIllegalState, http.StatusConflict},
		{"not allowed", nil, domain.ErrForbidden, http.StatusForbidden},
		{"missing stage id", map[string]string{}, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTaskHandler(t)

			me, stageID := idx.New(), idx.New()
			tk := validTask(idx.New())
			tk.StageID = stageID

			body := tt.body
			if body == nil {
				body = dto.MoveTaskRequest{StageID: stageID.String()}
				if tt.svcErr != nil {
					svc.EXPECT().MoveToStage(mock.Anything, tk.ID, stageID, me).Return(nil, tt.svcErr)
				} else {
					svc.EXPECT().MoveToStage(mock.Anything, tk.ID, stageID, me).Return(&tk, nil)
				}
			}

			rec := httptest.NewRecorder()
			h.MoveTask(rec, taskRequest(t, http.MethodPut, body, tk.ID, me))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestSetResponsible_Clear(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	me := idx.New()
	tk := validTask(idx.New())
	svc.EXPECT().SetResponsible(mock.Anything, tk.ID, (*idx.ID)(nil), me).Return(&tk, nil)

	rec := httptest.NewRecorder()
	h.SetResponsible(rec, taskRequest(t, http.MethodPut, map[string]any{"responsible_id": nil}, tk.ID, me))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.TaskResponse](t, rec); got.ResponsibleID != nil {
		t.Errorf("ResponsibleID = %v, want nil", *got.ResponsibleID)
	}
}

func TestSetResponsible_Assign(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	me, devID := idx.New(), idx.New()
	tk := validTask(idx.New())
	tk.ResponsibleID = &devID
	svc.EXPECT().
		SetResponsible(mock.Anything, tk.ID, mock.MatchedBy(func(id *idx.ID) bool { return idx.Equal(id, devID) }), me).
		Return(&tk, nil)

	rec := httptest.NewRecorder()
	h.SetResponsible(rec, taskRequest(t, http.MethodPut, map[string]string{"responsible_id": devID.String()}, tk.ID, me))

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	me := idx.New()
	tk := validTask(idx.New())
	tk.Title = "Fix the bug"
	svc.EXPECT().
		EditTask(mock.Anything, tk.ID, mock.MatchedBy(func(u task.Update) bool {
			return u.Title == "Fix the bug" && u.Description != nil && *u.Description == "today"
		}), me).
		Return(&tk, nil)

	rec := httptest.NewRecorder()
	h.UpdateTask(rec, taskRequest(t, http.MethodPatch, map[string]string{"title": "Fix the bug", "description": "today"}, tk.ID, me))

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	me, id := idx.New(), idx.New()
	svc.EXPECT().DeleteTask(mock.Anything, id, me).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteTask(rec, taskRequest(t, http.MethodDelete, nil, id, me))

	requireStatus(t, rec, http.StatusNoContent)
}
