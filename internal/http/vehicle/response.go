package vehicle

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type vehicleResponse struct {
	ID        uuid.UUID  `json:"id"`
	Model     string     `json:"model"`
	Year      int        `json:"year"`
	Plate     string     `json:"plate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(v *vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:        v.ID,
		Model:     v.Model,
		Year:      v.Year,
		Plate:     v.Plate,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toResponseList(vehicles []*vehicle.Vehicle) []vehicleResponse {
	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = toResponse(v)
	}

	return resp
}
