package handler

import (
	"net/http"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/middleware"
	"github.com/Dan9191/waste-service/internal/models"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req, "Invalid registration data"); err != nil {
		h.respondError(w, r, err, "Failed to register user")
		return
	}

	user, token, err := h.svc.Register(r.Context(), req.toNewUser())
	if err != nil {
		h.respondError(w, r, err, "Failed to register user")
		return
	}
	respondJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req, "Invalid login data"); err != nil {
		h.respondError(w, r, err, "Failed to log in")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err, "Failed to log in")
		return
	}
	respondJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

// Me returns the authenticated user
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.Unauthorized("Authentication required"), "Failed to fetch user")
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// ChangePassword replaces the authenticated user's password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.Unauthorized("Authentication required"), "Failed to change password")
		return
	}
	var req changePasswordRequest
	if err := decodeJSON(r, &req, "Invalid password data"); err != nil {
		h.respondError(w, r, err, "Failed to change password")
		return
	}

	if err := h.svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.respondError(w, r, err, "Failed to change password")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
