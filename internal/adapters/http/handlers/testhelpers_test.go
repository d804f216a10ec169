package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/middleware"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/project"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/task"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser marks r as authenticated by userID, as the Authenticate
// middleware would.
func asUser(r *http.Request, userID idx.ID) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}

func validProject(managerID idx.ID) project.Project {
	return project.Project{
		ID:          idx.New(),
		Name:        "Apollo",
		Description: "Moon landing",
		ManagerID:   managerID,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validTask(projectID idx.ID) task.Task {
	return task.Task{
		ID:        idx.New(),
		ProjectID: projectID,
		Title:     "Fix bug",
		StageID:   idx.New(),
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
