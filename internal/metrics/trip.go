package metrics

import (
	"errors"
	"time"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

var (
	ErrInvalidInitialMileage = errors.New("initial mileage must be greater than zero")
	ErrNonIncreasingMileage  = errors.New("each leg must increase the odometer reading")
	ErrInvalidLegVolume      = errors.New("each leg needs a volume greater than zero")
	ErrInvalidLegCost        = errors.New("each leg needs a total cost greater than zero")
)

// TripLeg is one fill-up inside a multi-leg trip entry.
type TripLeg struct {
	Date         time.Time
	Mileage      int
	FuelType     fueling.FuelType
	VolumeLiters float64
	CostPerLiter float64
	TotalCost    float64
	Station      string
}

// LegResult is the derived distance and efficiency for one leg. Efficiency is
// nil when the leg does not advance the odometer or carries no volume.
type LegResult struct {
	Distance   int
	Efficiency *float64
}

// TripSummary aggregates a trip as it is being entered. Legs that fail to
// increase mileage stay visible (for correction) but contribute nothing to
// the totals.
type TripSummary struct {
	Legs              []LegResult
	TotalDistance     int
	TotalVolume       float64
	TotalCost         float64
	AverageEfficiency *float64
}

// CalculateTrip derives per-leg and whole-trip figures. The running previous
// mileage starts at initialMileage and becomes each leg's reading afterwards,
// whether or not the leg counted toward the totals.
func CalculateTrip(initialMileage int, legs []TripLeg) TripSummary {
	summary := TripSummary{Legs: make([]LegResult, len(legs))}

	prev := initialMileage

	for i, leg := range legs {
		distance := leg.Mileage - prev

		result := LegResult{Distance: distance}

		if distance > 0 {
			summary.TotalDistance += distance
			summary.TotalVolume += leg.VolumeLiters
			summary.TotalCost += leg.TotalCost

			if leg.VolumeLiters > 0 {
				eff := round1(float64(distance) / leg.VolumeLiters)
				result.Efficiency = &eff
			}
		}

		summary.Legs[i] = result
		prev = leg.Mileage
	}

	if summary.TotalVolume > 0 {
		avg := round1(float64(summary.TotalDistance) / summary.TotalVolume)
		summary.AverageEfficiency = &avg
	}

	return summary
}

// ValidateTrip is the all-or-nothing gate before legs are submitted as
// fueling records: a failure here means no leg is created at all.
func ValidateTrip(initialMileage int, legs []TripLeg) error {
	if initialMileage <= 0 {
		return ErrInvalidInitialMileage
	}

	prev := initialMileage

	for _, leg := range legs {
		if leg.Mileage <= prev {
			return ErrNonIncreasingMileage
		}

		if leg.VolumeLiters <= 0 {
			return ErrInvalidLegVolume
		}

		if leg.TotalCost <= 0 {
			return ErrInvalidLegCost
		}

		prev = leg.Mileage
	}

	return nil
}
