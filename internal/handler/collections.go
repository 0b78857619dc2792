package handler

import (
	"net/http"

	"github.com/Dan9191/waste-service/internal/models"
)

type collectionRequest struct {
	WasteType        string  `json:"wasteType" validate:"required"`
	ScheduledDate    string  `json:"scheduledDate" validate:"required"`
	TimeWindow       string  `json:"timeWindow" validate:"required"`
	LocationID       int64   `json:"locationId" validate:"required,gt=0"`
	IsRecurring      bool    `json:"isRecurring"`
	RecurringPattern *string `json:"recurringPattern"`
}

type reminderRequest struct {
	UserID       int64  `json:"userId" validate:"required,gt=0"`
	CollectionID int64  `json:"collectionId" validate:"required,gt=0"`
	ReminderTime string `json:"reminderTime" validate:"required"`
	IsActive     *bool  `json:"isActive"`
}

type reminderPatchRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// CreateCollection handles POST /api/collections
func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req collectionRequest
	if err := decodeJSON(r, &req, "Invalid collection data"); err != nil {
		h.respondError(w, r, err, "Failed to create collection")
		return
	}
	scheduled, err := parseDate(req.ScheduledDate, "scheduledDate")
	if err != nil {
		h.respondError(w, r, err, "Failed to create collection")
		return
	}

	collection, err := h.svc.CreateCollection(r.Context(), &models.Collection{
		WasteType:        models.WasteType(req.WasteType),
		ScheduledDate:    scheduled,
		TimeWindow:       req.TimeWindow,
		LocationID:       req.LocationID,
		IsRecurring:      req.IsRecurring,
		RecurringPattern: req.RecurringPattern,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create collection")
		return
	}
	respondJSON(w, http.StatusCreated, collection)
}

// ListCollections handles GET /api/collections
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch collections")
		return
	}
	respondJSON(w, http.StatusOK, collections)
}

// UpcomingCollections handles GET /api/collections/upcoming?limit=
func (h *Handler) UpcomingCollections(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch upcoming collections")
		return
	}

	collections, err := h.svc.UpcomingCollections(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch upcoming collections")
		return
	}
	respondJSON(w, http.StatusOK, collections)
}

// GetCollection handles GET /api/collections/{id}
func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "collection")
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch collection")
		return
	}

	collection, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch collection")
		return
	}
	respondJSON(w, http.StatusOK, collection)
}

// CreateReminder handles POST /api/reminders
func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeJSON(r, &req, "Invalid reminder data"); err != nil {
		h.respondError(w, r, err, "Failed to create reminder")
		return
	}
	at, err := parseDate(req.ReminderTime, "reminderTime")
	if err != nil {
		h.respondError(w, r, err, "Failed to create reminder")
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	reminder, err := h.svc.CreateReminder(r.Context(), &models.Reminder{
		UserID:       req.UserID,
		CollectionID: req.CollectionID,
		ReminderTime: at,
		IsActive:     active,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create reminder")
		return
	}
	respondJSON(w, http.StatusCreated, reminder)
}

// ListReminders handles GET /api/reminders?userId=
func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch reminders")
		return
	}

	reminders, err := h.svc.ListReminders(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch reminders")
		return
	}
	respondJSON(w, http.StatusOK, reminders)
}

// UpdateReminder handles PATCH /api/reminders/{id}
func (h *Handler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "reminder")
	if err != nil {
		h.respondError(w, r, err, "Failed to update reminder")
		return
	}
	var req reminderPatchRequest
	if err := decodeJSON(r, &req, "Invalid reminder data"); err != nil {
		h.respondError(w, r, err, "Failed to update reminder")
		return
	}

	reminder, err := h.svc.UpdateReminder(r.Context(), id, models.ReminderPatch{IsActive: req.IsActive})
	if err != nil {
		h.respondError(w, r, err, "Failed to update reminder")
		return
	}
	respondJSON(w, http.StatusOK, reminder)
}
