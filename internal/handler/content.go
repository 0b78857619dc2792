package handler

import (
	"net/http"

	"github.com/Dan9191/waste-service/internal/models"
)

type tipRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

type resourceRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	ImageURL     string `json:"imageUrl" validate:"required"`
	ContentURL   string `json:"contentUrl" validate:"required"`
	ResourceType string `json:"resourceType" validate:"required"`
}

// CreateTip handles POST /api/recycling-tips
func (h *Handler) CreateTip(w http.ResponseWriter, r *http.Request) {
	var req tipRequest
	if err := decodeJSON(r, &req, "Invalid recycling tip data"); err != nil {
		h.respondError(w, r, err, "Failed to create recycling tip")
		return
	}

	tip, err := h.svc.CreateTip(r.Context(), &models.RecyclingTip{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create recycling tip")
		return
	}
	respondJSON(w, http.StatusCreated, tip)
}

// ListTips handles GET /api/recycling-tips?category=&limit=
func (h *Handler) ListTips(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch recycling tips")
		return
	}

	tips, err := h.svc.ListTips(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch recycling tips")
		return
	}
	respondJSON(w, http.StatusOK, tips)
}

// CreateResource handles POST /api/educational-resources
func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req resourceRequest
	if err := decodeJSON(r, &req, "Invalid educational resource data"); err != nil {
		h.respondError(w, r, err, "Failed to create educational resource")
		return
	}

	res, err := h.svc.CreateResource(r.Context(), &models.EducationalResource{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ContentURL:   req.ContentURL,
		ResourceType: req.ResourceType,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create educational resource")
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// ListResources handles GET /api/educational-resources?resourceType=&limit=
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch educational resources")
		return
	}
	resourceType := r.URL.Query().Get("resourceType")
	if resourceType == "" {
		resourceType = r.URL.Query().Get("type")
	}

	resources, err := h.svc.ListResources(r.Context(), resourceType, limit)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch educational resources")
		return
	}
	respondJSON(w, http.StatusOK, resources)
}
