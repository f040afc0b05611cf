package fueling

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

type fuelingResponse struct {
	ID           uuid.UUID        `json:"id"`
	VehicleID    uuid.UUID        `json:"vehicle_id"`
	Date         time.Time        `json:"date"`
	Mileage      int              `json:"mileage"`
	FuelType     fueling.FuelType `json:"fuel_type"`
	VolumeLiters float64          `json:"volume_liters"`
	CostPerLiter float64          `json:"cost_per_liter"`
	TotalCost    float64          `json:"total_cost"`
	Station      string           `json:"station,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(rec *fueling.Record) fuelingResponse {
	return fuelingResponse{
		ID:           rec.ID,
		VehicleID:    rec.VehicleID,
		Date:         rec.Date,
		Mileage:      rec.Mileage,
		FuelType:     rec.FuelType,
		VolumeLiters: rec.VolumeLiters,
		CostPerLiter: rec.CostPerLiter,
		TotalCost:    rec.TotalCost,
		Station:      rec.Station,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func toResponseList(recs []*fueling.Record) []fuelingResponse {
	resp := make([]fuelingResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}
