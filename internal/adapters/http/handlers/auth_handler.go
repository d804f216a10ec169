package handlers

import (
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// AuthHandler handles registration and login. Its routes are public.
type AuthHandler struct {
	dir    ports.DirectoryService
	tokens ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(dir ports.DirectoryService, tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{dir: dir, tokens: tokens}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.dir.Register(r.Context(), req.ToRegistration())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(u))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, role, err := h.dir.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tok, err := h.tokens.Issue(u, role.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTokenResponse(tok, u))
}
