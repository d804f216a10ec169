package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/notification"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

func TestNotifications_ListAndMarkRead(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockNotificationService(t)
	h := handlers.NewNotificationHandler(svc)

	me := idx.New()
	n := notification.Assigned(me, idx.New(), "Fix bug", testTime)
	svc.EXPECT().ListForUser(mock.Anything, me).Return([]notification.Notification{n}, nil)
	svc.EXPECT().MarkRead(mock.Anything, n.ID, me).Return(nil)
	other := idx.New()
	svc.EXPECT().MarkRead(mock.Anything, other, me).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	h.List(rec, asUser(httptest.NewRequest(http.MethodGet, "/", nil), me))
	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.ListResponse[dto.NotificationResponse]](t, rec)
	if got.Count != 1 || got.Items[0].Kind != "task_assigned" {
		t.Errorf("notifications = %+v", got.Items)
	}

	rec = httptest.NewRecorder()
	h.MarkRead(rec, asUser(withChiParams(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"notificationID": n.ID.String()}), me))
	requireStatus(t, rec, http.StatusNoContent)

	rec = httptest.NewRecorder()
	h.MarkRead(rec, asUser(withChiParams(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"notificationID": other.String()}), me))
	requireStatus(t, rec, http.StatusNotFound)
}
