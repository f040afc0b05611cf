package fueling

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("fueling record not found")

// FuelType is one of the four fuels sold at Brazilian stations.
type FuelType string

const (
	FuelGasoline FuelType = "Gasolina"
	FuelEthanol  FuelType = "Etanol"
	FuelDiesel   FuelType = "Diesel"
	FuelCNG      FuelType = "GNV"
)

func (t FuelType) Valid() bool {
	switch t {
	case FuelGasoline, FuelEthanol, FuelDiesel, FuelCNG:
		return true
	}

	return false
}

// Record is a single fill-up: odometer reading, volume bought and what it cost.
type Record struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	VehicleID    uuid.UUID
	Date         time.Time
	Mileage      int
	FuelType     FuelType
	VolumeLiters float64
	CostPerLiter float64
	TotalCost    float64
	Station      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// CostField identifies which of the three linked cost fields was edited last.
type CostField int

const (
	FieldVolume CostField = iota
	FieldCostPerLiter
	FieldTotalCost
)

// ResolveCost keeps totalCost = volumeLiters x costPerLiter consistent by
// recomputing the field the user did not touch: editing volume or unit price
// recomputes the total, editing the total recomputes the unit price.
func ResolveCost(volume, costPerLiter, total float64, edited CostField) (float64, float64, float64) {
	switch edited {
	case FieldTotalCost:
		if volume > 0 {
			costPerLiter = round2(total / volume)
		}
	default:
		total = round2(volume * costPerLiter)
	}

	return volume, costPerLiter, total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
