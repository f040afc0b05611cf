package fueling

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/http/request"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Handler struct {
	svc      *fueling.Service
	vehicles *vehicle.Service
}

func NewHandler(svc *fueling.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{svc: svc, vehicles: vehicles}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createFuelingRequest struct {
	Date         time.Time        `json:"date"`
	Mileage      int              `json:"mileage"`
	FuelType     fueling.FuelType `json:"fuel_type"`
	VolumeLiters float64          `json:"volume_liters"`
	CostPerLiter float64          `json:"cost_per_liter"`
	TotalCost    float64          `json:"total_cost"`
	LastEdited   string           `json:"last_edited"`
	Station      string           `json:"station"`
}

// costField maps the wire name of the last-edited field; the untouched cost
// field is recomputed server-side so the three stay linked.
func costField(name string) fueling.CostField {
	switch name {
	case "volume_liters":
		return fueling.FieldVolume
	case "total_cost":
		return fueling.FieldTotalCost
	default:
		return fueling.FieldCostPerLiter
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createFuelingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	volume, perLiter, total := fueling.ResolveCost(
		req.VolumeLiters, req.CostPerLiter, req.TotalCost, costField(req.LastEdited),
	)

	rec, err := h.svc.Create(r.Context(), userID, vehicleID, fueling.CreateParams{
		Date:         req.Date,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		VolumeLiters: volume,
		CostPerLiter: perLiter,
		TotalCost:    total,
		Station:      req.Station,
	})
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

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

	recs, err := h.svc.List(r.Context(), userID, vehicleID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(recs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
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

	rec, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, fueling.ErrNotFound) {
			http.Error(w, "fueling record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateFuelingRequest struct {
	Date         *time.Time        `json:"date,omitempty"`
	Mileage      *int              `json:"mileage,omitempty"`
	FuelType     *fueling.FuelType `json:"fuel_type,omitempty"`
	VolumeLiters *float64          `json:"volume_liters,omitempty"`
	CostPerLiter *float64          `json:"cost_per_liter,omitempty"`
	TotalCost    *float64          `json:"total_cost,omitempty"`
	LastEdited   string            `json:"last_edited"`
	Station      *string           `json:"station,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	var req updateFuelingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, fueling.ErrNotFound) {
			http.Error(w, "fueling record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Date != nil {
		rec.Date = *req.Date
	}

	if req.Mileage != nil {
		rec.Mileage = *req.Mileage
	}

	if req.FuelType != nil {
		rec.FuelType = *req.FuelType
	}

	if req.VolumeLiters != nil {
		rec.VolumeLiters = *req.VolumeLiters
	}

	if req.CostPerLiter != nil {
		rec.CostPerLiter = *req.CostPerLiter
	}

	if req.TotalCost != nil {
		rec.TotalCost = *req.TotalCost
	}

	if req.Station != nil {
		rec.Station = *req.Station
	}

	rec.VolumeLiters, rec.CostPerLiter, rec.TotalCost = fueling.ResolveCost(
		rec.VolumeLiters, rec.CostPerLiter, rec.TotalCost, costField(req.LastEdited),
	)

	if err := h.svc.Update(r.Context(), rec); err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
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
		if errors.Is(err, fueling.ErrNotFound) {
			http.Error(w, "fueling record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationErr(err error) bool {
	return errors.Is(err, fueling.ErrInvalidMileage) ||
		errors.Is(err, fueling.ErrInvalidVolume) ||
		errors.Is(err, fueling.ErrInvalidFuelType)
}
