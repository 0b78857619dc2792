package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/repository"
)

type wasteRecordRequest struct {
	UserID    int64    `json:"userId" validate:"required,gt=0"`
	WasteType string   `json:"wasteType" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required,gte=0"`
	Date      string   `json:"date"`
}

// CreateWasteRecord handles POST /api/waste-records
func (h *Handler) CreateWasteRecord(w http.ResponseWriter, r *http.Request) {
	var req wasteRecordRequest
	if err := decodeJSON(r, &req, "Invalid waste record data"); err != nil {
		h.respondError(w, r, err, "Failed to create waste record")
		return
	}
	record := &models.WasteRecord{
		UserID:    req.UserID,
		WasteType: models.WasteType(req.WasteType),
		Amount:    *req.Amount,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date, "date")
		if err != nil {
			h.respondError(w, r, err, "Failed to create waste record")
			return
		}
		record.Date = date
	}

	created, err := h.svc.CreateWasteRecord(r.Context(), record)
	if err != nil {
		h.respondError(w, r, err, "Failed to create waste record")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListWasteRecords handles GET /api/waste-records?userId=&startDate=&endDate=
func (h *Handler) ListWasteRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := recordFilter(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch waste records")
		return
	}

	records, err := h.svc.ListWasteRecords(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch waste records")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// ExportWasteRecords handles GET /api/waste-records/export and returns an XML report
func (h *Handler) ExportWasteRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := recordFilter(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to export waste records")
		return
	}

	body, err := h.svc.ExportWasteRecords(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err, "Failed to export waste records")
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="waste-report-%d-%s.xml"`, filter.UserID, h.svc.Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func recordFilter(r *http.Request) (repository.WasteRecordFilter, error) {
	userID, err := queryID(r, "userId")
	if err != nil {
		return repository.WasteRecordFilter{}, err
	}
	start, err := queryDate(r, "startDate")
	if err != nil {
		return repository.WasteRecordFilter{}, err
	}
	end, err := queryDate(r, "endDate")
	if err != nil {
		return repository.WasteRecordFilter{}, err
	}
	// a bare end date covers the whole day
	if raw := r.URL.Query().Get("endDate"); len(raw) == len("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	return repository.WasteRecordFilter{UserID: userID, Start: start, End: end}, nil
}
