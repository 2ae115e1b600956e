package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shoplite/shoplite-go/internal/middleware"
	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/service"
	"github.com/shoplite/shoplite-go/internal/validate"
)

// AuthHandler handles HTTP requests for registration, login, and
// profile reads.
type AuthHandler struct {
	service *service.AuthService
	dev     bool
}

// NewAuthHandler creates a new AuthHandler. dev controls whether
// internal error detail is exposed in responses.
func NewAuthHandler(svc *service.AuthService, dev bool) *AuthHandler {
	return &AuthHandler{service: svc, dev: dev}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validate.Register.Apply(body); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	req := model.RegisterRequest{
		Username: stringField(body, "username"),
		Email:    stringField(body, "email"),
		Password: stringField(body, "password"),
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeInternal(w, "registration failed", err, h.dev)
		}
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": "user registered successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrPasswordRequired):
			writeError(w, http.StatusBadRequest, "please provide email and password")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			writeInternal(w, "login failed", err, h.dev)
		}
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// HandleProfile handles GET /api/auth/profile requests.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeInternal(w, "failed to load profile", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "user": user})
}

// HandleListUsers handles GET /api/auth/users requests (admin only).
func (h *AuthHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	requester, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeInternal(w, "failed to load requester", err, h.dev)
		return
	}
	if requester.Role != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeInternal(w, "failed to list users", err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
