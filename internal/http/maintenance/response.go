package maintenance

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/maintenance"
)

type maintenanceResponse struct {
	ID                  uuid.UUID          `json:"id"`
	VehicleID           uuid.UUID          `json:"vehicle_id"`
	Date                time.Time          `json:"date"`
	Mileage             int                `json:"mileage"`
	Type                string             `json:"type"`
	CustomType          string             `json:"custom_type,omitempty"`
	Label               string             `json:"label"`
	Description         string             `json:"description,omitempty"`
	Cost                float64            `json:"cost"`
	Status              maintenance.Status `json:"status"`
	NextMileage         *int               `json:"next_mileage,omitempty"`
	NextMileageInterval *int               `json:"next_mileage_interval,omitempty"`
	NextDate            *time.Time         `json:"next_date,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(rec *maintenance.Record) maintenanceResponse {
	return maintenanceResponse{
		ID:                  rec.ID,
		VehicleID:           rec.VehicleID,
		Date:                rec.Date,
		Mileage:             rec.Mileage,
		Type:                rec.Type,
		CustomType:          rec.CustomType,
		Label:               rec.Label(),
		Description:         rec.Description,
		Cost:                rec.Cost,
		Status:              rec.Status,
		NextMileage:         rec.NextMileage,
		NextMileageInterval: rec.NextMileageInterval,
		NextDate:            rec.NextDate,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
}

func toResponseList(recs []*maintenance.Record) []maintenanceResponse {
	resp := make([]maintenanceResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}
