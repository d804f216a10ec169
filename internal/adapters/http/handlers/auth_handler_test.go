package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/user"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
	"github.com/carolinafmacedo/workflowmanagement/mocks"
)

func newAuthHandler(t *testing.T) (*handlers.AuthHandler, *mocks.MockDirectoryService, *mocks.MockTokenService) {
	t.Helper()
	dir := mocks.NewMockDirectoryService(t)
	tokens := mocks.NewMockTokenService(t)
	return handlers.NewAuthHandler(dir, tokens), dir, tokens
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	h, dir, _ := newAuthHandler(t)

	roleID := idx.New()
	created := &user.User{ID: idx.New(), Name: "Ana", Email: "ana@example.com", RoleID: roleID, PasswordHash: "hash"}
	dir.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(reg user.Registration) bool {
			return reg.Email == "ana@example.com" && reg.Password == "secret123" && reg.RoleID == roleID
		})).
		Return(created, nil)

	body := jsonBody(t, dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123", RoleID: roleID.String()})
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body))

	requireStatus(t, rec, http.StatusCreated)
	if bytes.Contains(rec.Body.Bytes(), []byte("hash")) {
		t.Errorf("response leaks password hash: %s", rec.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	h, dir, _ := newAuthHandler(t)

	dir.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

	body := jsonBody(t, dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123", RoleID: idx.New().String()})
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body))

	requireStatus(t, rec, http.StatusConflict)
}

func TestLogin_IssuesToken(t *testing.T) {
	t.Parallel()
	h, dir, tokens := newAuthHandler(t)

	u := &user.User{ID: idx.New(), Name: "Ana", Email: "ana@example.com"}
	role := &user.Role{ID: idx.New(), Name: user.RoleManager}
	expires := time.Date(2026, 2, 12, 16, 0, 0, 0, time.UTC)

	dir.EXPECT().Authenticate(mock.Anything, "ana@example.com", "secret123").Return(u, role, nil)
	tokens.EXPECT().Issue(u, user.RoleManager).Return(ports.AccessToken{Token: "signed", ExpiresAt: expires}, nil)

	body := jsonBody(t, dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TokenResponse](t, rec)
	if resp.AccessToken != "signed" || resp.TokenType != "Bearer" {
		t.Errorf("token = %q/%q, want signed/Bearer", resp.AccessToken, resp.TokenType)
	}
	if resp.ExpiresAt != "2026-02-12T16:00:00Z" {
		t.Errorf("ExpiresAt = %q", resp.ExpiresAt)
	}
	if resp.User.ID != u.ID.String() {
		t.Errorf("User.ID = %q, want %q", resp.User.ID, u.ID)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	h, dir, _ := newAuthHandler(t)

	dir.EXPECT().Authenticate(mock.Anything, "ana@example.com", "wrong-pass").Return(nil, nil, domain.ErrUnauthenticated)

	body := jsonBody(t, dto.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()
	h, _, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{}`)))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(resp.Errors))
	}
}
