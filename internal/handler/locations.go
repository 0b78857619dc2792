package handler

import (
	"net/http"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

type locationRequest struct {
	Name               string   `json:"name" validate:"required"`
	Address            string   `json:"address" validate:"required"`
	City               string   `json:"city" validate:"required"`
	Latitude           *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude          *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	AcceptedWasteTypes []string `json:"acceptedWasteTypes" validate:"omitempty,dive,required"`
	OperatingHours     string   `json:"operatingHours" validate:"required"`
	PhoneNumber        *string  `json:"phoneNumber"`
	Website            *string  `json:"website"`
}

type locationPatchRequest struct {
	Name               *string  `json:"name" validate:"omitempty,min=1"`
	Address            *string  `json:"address" validate:"omitempty,min=1"`
	City               *string  `json:"city" validate:"omitempty,min=1"`
	Latitude           *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude          *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AcceptedWasteTypes []string `json:"acceptedWasteTypes" validate:"omitempty,dive,required"`
	OperatingHours     *string  `json:"operatingHours" validate:"omitempty,min=1"`
	PhoneNumber        *string  `json:"phoneNumber"`
	Website            *string  `json:"website"`
}

// CreateLocation handles POST /api/disposal-locations
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(r, &req, "Invalid disposal location data"); err != nil {
		h.respondError(w, r, err, "Failed to create disposal location")
		return
	}
	types := req.AcceptedWasteTypes
	if types == nil {
		types = []string{}
	}

	location, err := h.svc.CreateLocation(r.Context(), &models.DisposalLocation{
		Name:               req.Name,
		Address:            req.Address,
		City:               req.City,
		Latitude:           *req.Latitude,
		Longitude:          *req.Longitude,
		AcceptedWasteTypes: types,
		OperatingHours:     req.OperatingHours,
		PhoneNumber:        req.PhoneNumber,
		Website:            req.Website,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create disposal location")
		return
	}
	respondJSON(w, http.StatusCreated, location)
}

// ListLocations handles GET /api/disposal-locations?type=
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.svc.ListLocations(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch disposal locations")
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// NearbyLocations handles GET /api/disposal-locations/nearby?lat=&lng=&limit=&radius=
func (h *Handler) NearbyLocations(w http.ResponseWriter, r *http.Request) {
	q, err := nearbyQuery(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch nearby locations")
		return
	}

	locations, err := h.svc.NearbyLocations(r.Context(), q)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch nearby locations")
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

func nearbyQuery(r *http.Request) (repository.NearbyQuery, error) {
	lat, okLat, err := queryFloat(r, "lat")
	if err != nil {
		return repository.NearbyQuery{}, err
	}
	lon, okLon, err := queryFloat(r, "lng", "lon")
	if err != nil {
		return repository.NearbyQuery{}, err
	}
	if !okLat || !okLon {
		return repository.NearbyQuery{}, apperr.Validation("Latitude and longitude are required")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return repository.NearbyQuery{}, apperr.Validation("Latitude or longitude out of range")
	}
	limit, err := queryLimit(r)
	if err != nil {
		return repository.NearbyQuery{}, err
	}
	radius, _, err := queryFloat(r, "radius")
	if err != nil {
		return repository.NearbyQuery{}, err
	}
	if radius < 0 {
		return repository.NearbyQuery{}, apperr.Validation("Invalid radius",
			apperr.FieldError{Field: "radius", Message: "must not be negative"})
	}
	return repository.NearbyQuery{Lat: lat, Lon: lon, Limit: limit, RadiusKm: radius}, nil
}

// GetLocation handles GET /api/disposal-locations/{id}
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "location")
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch disposal location")
		return
	}

	location, err := h.svc.GetLocation(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch disposal location")
		return
	}
	respondJSON(w, http.StatusOK, location)
}

// UpdateLocation handles PUT /api/disposal-locations/{id}
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "location")
	if err != nil {
		h.respondError(w, r, err, "Failed to update disposal location")
		return
	}
	var req locationPatchRequest
	if err := decodeJSON(r, &req, "Invalid disposal location data"); err != nil {
		h.respondError(w, r, err, "Failed to update disposal location")
		return
	}

	location, err := h.svc.UpdateLocation(r.Context(), id, models.LocationPatch{
		Name:               req.Name,
		Address:            req.Address,
		City:               req.City,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AcceptedWasteTypes: req.AcceptedWasteTypes,
		OperatingHours:     req.OperatingHours,
		PhoneNumber:        req.PhoneNumber,
		Website:            req.Website,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to update disposal location")
		return
	}
	respondJSON(w, http.StatusOK, location)
}

// DeleteLocation handles DELETE /api/disposal-locations/{id}
func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "location")
	if err != nil {
		h.respondError(w, r, err, "Failed to delete disposal location")
		return
	}

	if err := h.svc.DeleteLocation(r.Context(), id); err != nil {
		h.respondError(w, r, err, "Failed to delete disposal location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
