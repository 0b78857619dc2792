package handler

import (
	"net/http"

	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/service"
)

type createUserRequest struct {
	Username    string         `json:"username" validate:"required,min=3"`
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,min=6,max=72"`
	FullName    string         `json:"fullName" validate:"required"`
	Role        string         `json:"role"`
	Preferences map[string]any `json:"preferences"`
}

func (req createUserRequest) toNewUser() service.NewUser {
	return service.NewUser{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Role:        req.Role,
		Preferences: req.Preferences,
	}
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName" validate:"omitempty,min=1"`
}

type preferencesRequest struct {
	Preferences map[string]any `json:"preferences" validate:"required"`
}

// CreateUser handles POST /api/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req, "Invalid user data"); err != nil {
		h.respondError(w, r, err, "Failed to create user")
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.toNewUser())
	if err != nil {
		h.respondError(w, r, err, "Failed to create user")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /api/users/{id}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "user")
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch user")
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "user")
	if err != nil {
		h.respondError(w, r, err, "Failed to update user")
		return
	}
	var req updateUserRequest
	if err := decodeJSON(r, &req, "Invalid user data"); err != nil {
		h.respondError(w, r, err, "Failed to update user")
		return
	}

	user, err := h.svc.UpdateUser(r.Context(), id, models.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to update user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdatePreferences handles PUT /api/users/{id}/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "user")
	if err != nil {
		h.respondError(w, r, err, "Failed to update preferences")
		return
	}
	var req preferencesRequest
	if err := decodeJSON(r, &req, "Invalid preferences"); err != nil {
		h.respondError(w, r, err, "Failed to update preferences")
		return
	}

	prefs, err := h.svc.UpdatePreferences(r.Context(), id, req.Preferences)
	if err != nil {
		h.respondError(w, r, err, "Failed to update preferences")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"preferences": prefs})
}
