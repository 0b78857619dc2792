package handler

import "net/http"

// DashboardSummary handles GET /api/dashboard-summary/{userId}
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId", "user")
	if err != nil {
		h.respondError(w, r, err, "Failed to build dashboard summary")
		return
	}

	summary, err := h.svc.DashboardSummary(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "Failed to build dashboard summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// ListStatistics handles GET /api/waste-statistics?limit=
func (h *Handler) ListStatistics(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch waste statistics")
		return
	}

	snapshots, err := h.svc.ListSnapshots(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch waste statistics")
		return
	}
	respondJSON(w, http.StatusOK, snapshots)
}

// RunStatistics handles POST /api/waste-statistics/run
func (h *Handler) RunStatistics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.ProcessWasteData(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Failed to process waste data")
		return
	}
	respondJSON(w, http.StatusCreated, snapshot)
}
