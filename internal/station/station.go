package station

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("station not found")

// Station is a gas station with a fixed location. Stations are shared across
// users; prices are derived from the community's fueling records.
type Station struct {
	ID        uuid.UUID
	Name      string
	Brand     string
	Lat       float64
	Lng       float64
	CreatedAt time.Time
}

const earthRadiusKM = 6371

// Distance is the great-circle distance in km between two coordinates
// (Haversine formula).
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
