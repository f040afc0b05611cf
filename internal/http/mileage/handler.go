package mileage

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/http/request"
	"github.com/rafaelbdn/autolog/internal/metrics"
	"github.com/rafaelbdn/autolog/internal/mileage"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Handler struct {
	svc      *mileage.Service
	vehicles *vehicle.Service
}

func NewHandler(svc *mileage.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{svc: svc, vehicles: vehicles}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/current", h.current)
	r.Delete("/{id}", h.delete)
}

type createMileageRequest struct {
	Date    time.Time `json:"date"`
	Mileage int       `json:"mileage"`
}

type mileagePointResponse struct {
	ID      uuid.UUID      `json:"id"`
	Date    time.Time      `json:"date"`
	Mileage int            `json:"mileage"`
	Source  metrics.Source `json:"source"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createMileageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), userID, vehicleID, mileage.CreateParams{
		Date:    req.Date,
		Mileage: req.Mileage,
	})
	if err != nil {
		if errors.Is(err, mileage.ErrMileageNotAhead) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(mileagePointResponse{
		ID:      rec.ID,
		Date:    rec.Date,
		Mileage: rec.Mileage,
		Source:  metrics.SourceManual,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// list returns the merged mileage ledger (manual entries plus fill-up
// readings), most recent first.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	ledger, err := h.svc.Ledger(r.Context(), userID, vehicleID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]mileagePointResponse, len(ledger))
	for i, p := range ledger {
		resp[i] = mileagePointResponse{ID: p.ID, Date: p.Date, Mileage: p.Mileage, Source: p.Source}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
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

	current, err := h.svc.CurrentMileage(r.Context(), userID, vehicleID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]int{"current_mileage": current}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, mileage.ErrNotFound) {
			http.Error(w, "mileage record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
