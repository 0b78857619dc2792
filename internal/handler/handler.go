package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/middleware"
	"github.com/Dan9191/waste-service/internal/routes"
	"github.com/Dan9191/waste-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts every endpoint on r. Fixed paths are registered
// before their {id} siblings so that mux matches them first.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	auth := middleware.AuthMiddleware(h.svc)

	r.HandleFunc(routes.Health, h.Health).Methods(http.MethodGet)

	r.HandleFunc(routes.AuthRegister, h.Register).Methods(http.MethodPost)
	r.HandleFunc(routes.AuthLogin, h.Login).Methods(http.MethodPost)
	r.Handle(routes.AuthMe, auth(http.HandlerFunc(h.Me))).Methods(http.MethodGet)
	r.Handle(routes.AuthChangePassword, auth(http.HandlerFunc(h.ChangePassword))).Methods(http.MethodPost)

	r.HandleFunc(routes.Users, h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc(routes.UserPreferences, h.UpdatePreferences).Methods(http.MethodPut)
	r.HandleFunc(routes.User, h.GetUser).Methods(http.MethodGet)
	r.HandleFunc(routes.User, h.UpdateUser).Methods(http.MethodPut, http.MethodPatch)

	r.HandleFunc(routes.WasteRecordExport, h.ExportWasteRecords).Methods(http.MethodGet)
	r.HandleFunc(routes.WasteRecords, h.ListWasteRecords).Methods(http.MethodGet)
	r.HandleFunc(routes.WasteRecords, h.CreateWasteRecord).Methods(http.MethodPost)

	r.HandleFunc(routes.CollectionsUpcoming, h.UpcomingCollections).Methods(http.MethodGet)
	r.HandleFunc(routes.Collections, h.ListCollections).Methods(http.MethodGet)
	r.HandleFunc(routes.Collections, h.CreateCollection).Methods(http.MethodPost)
	r.HandleFunc(routes.Collection, h.GetCollection).Methods(http.MethodGet)

	r.HandleFunc(routes.Reminders, h.ListReminders).Methods(http.MethodGet)
	r.HandleFunc(routes.Reminders, h.CreateReminder).Methods(http.MethodPost)
	r.HandleFunc(routes.Reminder, h.UpdateReminder).Methods(http.MethodPatch, http.MethodPut)

	r.HandleFunc(routes.DisposalLocationsNearby, h.NearbyLocations).Methods(http.MethodGet)
	r.HandleFunc(routes.DisposalLocations, h.ListLocations).Methods(http.MethodGet)
	r.HandleFunc(routes.DisposalLocations, h.CreateLocation).Methods(http.MethodPost)
	r.HandleFunc(routes.DisposalLocation, h.GetLocation).Methods(http.MethodGet)
	r.HandleFunc(routes.DisposalLocation, h.UpdateLocation).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc(routes.DisposalLocation, h.DeleteLocation).Methods(http.MethodDelete)

	r.HandleFunc(routes.RecyclingTips, h.ListTips).Methods(http.MethodGet)
	r.HandleFunc(routes.RecyclingTips, h.CreateTip).Methods(http.MethodPost)
	r.HandleFunc(routes.EducationalResources, h.ListResources).Methods(http.MethodGet)
	r.HandleFunc(routes.EducationalResources, h.CreateResource).Methods(http.MethodPost)

	r.HandleFunc(routes.DashboardSummary, h.DashboardSummary).Methods(http.MethodGet)

	r.HandleFunc(routes.WasteStatisticsRun, h.RunStatistics).Methods(http.MethodPost)
	r.HandleFunc(routes.WasteStatistics, h.ListStatistics).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, errorResponse{Message: "Route not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "Method not allowed"})
	})
}

// Health reports liveness and whether the store answers
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if err := h.svc.Ping(r.Context()); err != nil {
		h.log.Warnf("Health check: store unreachable: %v", err)
		status, code = "degraded", http.StatusServiceUnavailable
	}
	respondJSON(w, code, map[string]any{
		"status":      status,
		"environment": h.svc.Environment(),
		"timestamp":   h.svc.Now().UTC().Format(time.RFC3339),
	})
}
