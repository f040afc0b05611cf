package trip

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
	"github.com/rafaelbdn/autolog/internal/metrics"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Handler struct {
	fuelings *fueling.Service
	vehicles *vehicle.Service
}

func NewHandler(fuelings *fueling.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{fuelings: fuelings, vehicles: vehicles}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/preview", h.preview)
	r.Post("/", h.submit)
}

type legDTO struct {
	Date         time.Time        `json:"date"`
	Mileage      int              `json:"mileage"`
	FuelType     fueling.FuelType `json:"fuel_type"`
	VolumeLiters float64          `json:"volume_liters"`
	CostPerLiter float64          `json:"cost_per_liter"`
	TotalCost    float64          `json:"total_cost"`
	Station      string           `json:"station"`
}

type tripRequest struct {
	InitialMileage int      `json:"initial_mileage"`
	Legs           []legDTO `json:"legs"`
}

type legResultDTO struct {
	Distance   int      `json:"distance"`
	Efficiency *float64 `json:"efficiency"`
}

type summaryResponse struct {
	Legs              []legResultDTO `json:"legs"`
	TotalDistance     int            `json:"total_distance"`
	TotalVolume       float64        `json:"total_volume"`
	TotalCost         float64        `json:"total_cost"`
	AverageEfficiency *float64       `json:"average_efficiency"`
}

// preview derives per-leg and trip efficiency without creating anything, so
// the entry form can show running figures while legs are still being typed.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := metrics.CalculateTrip(req.InitialMileage, toLegs(req.Legs))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type submitResponse struct {
	Created []uuid.UUID     `json:"created"`
	Summary summaryResponse `json:"summary"`
}

// submit validates the whole trip up front (all-or-nothing), then creates
// each leg as an independent fueling record. A store failure mid-batch stops
// the remainder; already-created legs are reported and stay created.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	legs := toLegs(req.Legs)

	if err := metrics.ValidateTrip(req.InitialMileage, legs); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	params := make([]fueling.CreateParams, len(legs))
	for i, leg := range legs {
		params[i] = fueling.CreateParams{
			Date:         leg.Date,
			Mileage:      leg.Mileage,
			FuelType:     leg.FuelType,
			VolumeLiters: leg.VolumeLiters,
			CostPerLiter: leg.CostPerLiter,
			TotalCost:    leg.TotalCost,
			Station:      leg.Station,
		}
	}

	created, err := h.fuelings.CreateBatch(r.Context(), userID, vehicleID, params)
	if err != nil && len(created) == 0 {
		if errors.Is(err, fueling.ErrInvalidFuelType) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if err != nil {
		slog.Error("trip submission stopped mid-batch", "created", len(created), "error", err)
	}

	ids := make([]uuid.UUID, len(created))
	for i, rec := range created {
		ids[i] = rec.ID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(submitResponse{
		Created: ids,
		Summary: toSummaryResponse(metrics.CalculateTrip(req.InitialMileage, legs)),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toLegs(dtos []legDTO) []metrics.TripLeg {
	legs := make([]metrics.TripLeg, len(dtos))
	for i, d := range dtos {
		legs[i] = metrics.TripLeg{
			Date:         d.Date,
			Mileage:      d.Mileage,
			FuelType:     d.FuelType,
			VolumeLiters: d.VolumeLiters,
			CostPerLiter: d.CostPerLiter,
			TotalCost:    d.TotalCost,
			Station:      d.Station,
		}
	}

	return legs
}

func toSummaryResponse(s metrics.TripSummary) summaryResponse {
	legs := make([]legResultDTO, len(s.Legs))
	for i, leg := range s.Legs {
		legs[i] = legResultDTO{Distance: leg.Distance, Efficiency: leg.Efficiency}
	}

	return summaryResponse{
		Legs:              legs,
		TotalDistance:     s.TotalDistance,
		TotalVolume:       s.TotalVolume,
		TotalCost:         s.TotalCost,
		AverageEfficiency: s.AverageEfficiency,
	}
}
