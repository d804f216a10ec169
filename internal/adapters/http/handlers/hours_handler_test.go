package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

func newHoursHandler(t *testing.T) (*handlers.HoursHandler, *mocks.MockTimeLedgerService) {
	t.Helper()
	svc := mocks.NewMockTimeLedgerService(t)
	return handlers.NewHoursHandler(svc), svc
}

func TestLogHours_Success(t *testing.T) {
	t.Parallel()
	h, svc := newHoursHandler(t)

	me, taskID := idx.New(), idx.New()
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	entry := &timelog.Entry{ID: idx.New(), TaskID: taskID, UserID: me, Hours: decimal.RequireFromString("1.5"), LogDate: day, CreatedAt: testTime}

	svc.EXPECT().
		LogHours(mock.Anything, taskID, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("1.5")) }), day, me).
		Return(entry, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]any{"hours": "1.5", "date": "2026-02-10"}))
	req = asUser(withChiParams(req, map[string]string{"taskID": taskID.String()}), me)
	h.LogHours(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.HourEntryResponse](t, rec)
	if resp.Hours != "1.5" || resp.Date != "2026-02-10" {
		t.Errorf("entry = %s on %s, want 1.5 on 2026-02-10", resp.Hours, resp.Date)
	}
}

func TestLogHours_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		svcErr     error
		wantStatus int
	}{
		{"bad date", map[string]any{"hours": 1, "date": "yesterday"}, nil, http.StatusBadRequest},
		{"not responsible", map[string]any{"hours": 1, "date": "2026-02-10"}, domain.ErrForbidden, http.StatusForbidden},
		{"negative hours", map[string]any{"hours": -1, "date": "2026-02-10"}, domain.NewValidationError("hours", "must not be negative"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newHoursHandler(t)

			me, taskID := idx.New(), idx.New()
			if tt.svcErr != nil {
				svc.EXPECT().LogHours(mock.Anything, taskID, mock.Anything, mock.Anything, me).Return(nil, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, tt.body))
			req = asUser(withChiParams(req, map[string]string{"taskID": taskID.String()}), me)
			h.LogHours(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestListHoursByTask_IncludesTotal(t *testing.T) {
	t.Parallel()
	h, svc := newHoursHandler(t)

	taskID := idx.New()
	svc.EXPECT().ListByTask(mock.Anything, taskID).Return([]timelog.Entry{
		{ID: idx.New(), Hours: decimal.RequireFromString("0.1"), LogDate: testTime},
		{ID: idx.New(), Hours: decimal.RequireFromString("0.2"), LogDate: testTime},
	}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"taskID": taskID.String()})
	h.ListByTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.HoursListResponse](t, rec); got.Total != "0.3" || got.Count != 2 {
		t.Errorf("total = %s over %d entries, want 0.3 over 2", got.Total, got.Count)
	}
}

func TestEditAndDeleteEntry(t *testing.T) {
	t.Parallel()
	h, svc := newHoursHandler(t)

	me, entryID := idx.New(), idx.New()
	day := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	edited := &timelog.Entry{ID: entryID, Hours: decimal.NewFromInt(2), LogDate: day}

	svc.EXPECT().EditEntry(mock.Anything, entryID, mock.Anything, day, me).Return(edited, nil)
	svc.EXPECT().DeleteEntry(mock.Anything, entryID, me).Return(domain.ErrForbidden)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/", jsonBody(t, map[string]any{"hours": 2, "date": "2026-02-11"}))
	req = asUser(withChiParams(req, map[string]string{"entryID": entryID.String()}), me)
	h.EditEntry(rec, req)
	requireStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	req = asUser(withChiParams(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"entryID": entryID.String()}), me)
	h.DeleteEntry(rec, req)
	requireStatus(t, rec, http.StatusForbidden)
}

func TestTaskTotal(t *testing.T) {
	t.Parallel()
	h, svc := newHoursHandler(t)

	taskID := idx.New()
	svc.EXPECT().TotalHoursForTask(mock.Anything, taskID).Return(decimal.Zero, nil)

	rec := httptest.NewRecorder()
	h.TaskTotal(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"taskID": taskID.String()}))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.HoursTotalResponse](t, rec); got.Total != "0" {
		t.Errorf("Total = %q, want 0", got.Total)
	}
}
