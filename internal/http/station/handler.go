package station

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/station"
)

type Handler struct {
	svc *station.Service
}

func NewHandler(svc *station.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/average-price", h.averagePrice)
	r.Get("/nearby", h.nearby)
}

type averagePriceResponse struct {
	AveragePrice *float64 `json:"average_price"`
}

// averagePrice is an advisory lookup: on failure it degrades to "no data"
// instead of erroring, so the page it feeds never blocks on it.
func (h *Handler) averagePrice(w http.ResponseWriter, r *http.Request) {
	fuelType := fueling.FuelType(r.URL.Query().Get("fuel_type"))
	if !fuelType.Valid() {
		http.Error(w, "valid fuel_type is required", http.StatusBadRequest)
		return
	}

	price, err := h.svc.AveragePrice(r.Context(), fuelType, r.URL.Query().Get("station"))
	if err != nil {
		slog.Warn("average price lookup failed", "error", err)

		price = nil
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(averagePriceResponse{AveragePrice: price}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type nearbyStationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand,omitempty"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Distance     float64   `json:"distance"`
	AveragePrice *float64  `json:"average_price"`
	RecordCount  int       `json:"record_count"`
}

type nearbyResponse struct {
	Stations []nearbyStationResponse `json:"stations"`
}

// nearby degrades the same way: a failed lookup yields an empty station list.
func (h *Handler) nearby(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)

	if errLat != nil || errLng != nil {
		http.Error(w, "lat and lng are required", http.StatusBadRequest)
		return
	}

	fuelType := fueling.FuelType(r.URL.Query().Get("fuel_type"))
	if !fuelType.Valid() {
		http.Error(w, "valid fuel_type is required", http.StatusBadRequest)
		return
	}

	nearby, err := h.svc.Nearby(r.Context(), lat, lng, fuelType)
	if err != nil {
		slog.Warn("nearby station lookup failed", "error", err)

		nearby = nil
	}

	resp := nearbyResponse{Stations: make([]nearbyStationResponse, len(nearby))}
	for i, n := range nearby {
		resp.Stations[i] = nearbyStationResponse{
			ID:           n.Station.ID,
			Name:         n.Station.Name,
			Brand:        n.Station.Brand,
			Lat:          n.Station.Lat,
			Lng:          n.Station.Lng,
			Distance:     n.DistanceKM,
			AveragePrice: n.AveragePrice,
			RecordCount:  n.RecordCount,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
