package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/dashboard"
	"github.com/rafaelbdn/autolog/internal/http/request"
	"github.com/rafaelbdn/autolog/internal/metrics"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Handler struct {
	svc      *dashboard.Service
	vehicles *vehicle.Service
}

func NewHandler(svc *dashboard.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{svc: svc, vehicles: vehicles}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
}

// AlertRoutes mounts the alerts-page listing, which uses the unit-agnostic
// ordering rather than the dashboard's km-first one.
func (h *Handler) AlertRoutes(r chi.Router) {
	r.Get("/", h.alerts)
}

type alertResponse struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Status     metrics.AlertStatus `json:"status"`
	Value      int                 `json:"value"`
	Unit       metrics.Unit        `json:"unit"`
	NextTarget string              `json:"next_target"`
}

type efficiencyResponse struct {
	RecordID   uuid.UUID `json:"record_id"`
	Date       time.Time `json:"date"`
	Mileage    int       `json:"mileage"`
	Efficiency *float64  `json:"efficiency"`
}

type nextScheduledResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}

type summaryResponse struct {
	CurrentMileage       int                    `json:"current_mileage"`
	AverageEfficiency    *float64               `json:"average_efficiency"`
	Efficiencies         []efficiencyResponse   `json:"efficiencies"`
	TotalMaintenanceCost float64                `json:"total_maintenance_cost"`
	PendingCount         int                    `json:"pending_count"`
	ScheduledCount       int                    `json:"scheduled_count"`
	NextScheduled        *nextScheduledResponse `json:"next_scheduled,omitempty"`
	Alerts               []alertResponse        `json:"alerts"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.svc.Summary(r.Context(), userID, vehicleID, time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		CurrentMileage:       summary.CurrentMileage,
		AverageEfficiency:    summary.AverageEfficiency,
		Efficiencies:         make([]efficiencyResponse, len(summary.Efficiencies)),
		TotalMaintenanceCost: summary.Maintenance.TotalCost,
		PendingCount:         summary.Maintenance.PendingCount,
		ScheduledCount:       summary.Maintenance.ScheduledCount,
		Alerts:               toAlertResponses(summary.Alerts),
	}

	for i, s := range summary.Efficiencies {
		resp.Efficiencies[i] = efficiencyResponse{
			RecordID:   s.RecordID,
			Date:       s.Date,
			Mileage:    s.Mileage,
			Efficiency: s.Efficiency,
		}
	}

	if next := summary.Maintenance.NextScheduled; next != nil {
		resp.NextScheduled = &nextScheduledResponse{
			ID:    next.ID,
			Label: next.Label(),
			Date:  next.Date,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := h.svc.Alerts(r.Context(), userID, vehicleID, time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAlertResponses(alerts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toAlertResponses(alerts []metrics.Alert) []alertResponse {
	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = alertResponse{
			ID:         a.ID,
			Type:       a.Type,
			Status:     a.Status,
			Value:      a.Value,
			Unit:       a.Unit,
			NextTarget: a.NextTarget,
		}
	}

	return resp
}
