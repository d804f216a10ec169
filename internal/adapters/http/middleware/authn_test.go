package middleware_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/middleware"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/logging"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

func TestAuthenticate_StoresUserID(t *testing.T) {
	t.Parallel()

	userID := idx.New()
	tokens := mocks.NewMockTokenService(t)
	tokens.EXPECT().Verify("good-token").Return(userID, nil)

	var buf bytes.Buffer
	var gotID idx.ID
	var gotOK bool
	handler := middleware.Authenticate(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = middleware.UserIDFromContext(r.Context())
		logging.FromContext(r.Context()).InfoContext(r.Context(), "inside")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
	req.Header.Set("Authorization", "bearer good-token")
	req = req.WithContext(logging.WithLogger(req.Context(), testLogger(&buf)))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if !gotOK || gotID != userID {
		t.Errorf("UserIDFromContext = (%q, %v), want (%q, true)", gotID, gotOK, userID)
	}
	if !strings.Contains(buf.String(), "user_id="+userID.String()) {
		t.Errorf("request logger missing user_id; got %q", buf.String())
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{"missing header", "", false},
		{"wrong scheme", "Basic dXNlcjpwYXNz", false},
		{"empty token", "Bearer ", false},
		{"invalid token", "Bearer expired-token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewMockTokenService(t)
			if tt.verify {
				tokens.EXPECT().Verify("expired-token").
					Return(idx.Zero, fmt.Errorf("%w: token is expired", domain.ErrUnauthenticated))
			}

			called := false
			handler := middleware.Authenticate(tokens)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("next handler was called for an unauthenticated request")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if _, ok := middleware.UserIDFromContext(req.Context()); ok {
		t.Error("UserIDFromContext ok = true on a bare context")
	}
}
