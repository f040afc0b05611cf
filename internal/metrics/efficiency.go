package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

// EfficiencySample is the km/l computed for one fill-up relative to the
// previous one. Efficiency is nil when the interval cannot be evaluated
// (odometer did not advance, or no volume); such samples stay visible but are
// excluded from the average and from chart interpolation.
type EfficiencySample struct {
	RecordID   uuid.UUID
	Date       time.Time
	Mileage    int
	Efficiency *float64
}

// IntervalEfficiencies computes per-interval km/l over the vehicle's fill-ups.
//
// The fuel burned to reach a reading is attributed to the volume purchased at
// that reading, which assumes each fill-up tops the tank. That is a documented
// simplification of the model, not a bug.
func IntervalEfficiencies(recs []*fueling.Record) []EfficiencySample {
	if len(recs) < 2 {
		return nil
	}

	sorted := make([]*fueling.Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mileage < sorted[j].Mileage
	})

	samples := make([]EfficiencySample, 0, len(sorted)-1)

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]

		sample := EfficiencySample{
			RecordID: cur.ID,
			Date:     cur.Date,
			Mileage:  cur.Mileage,
		}

		distance := cur.Mileage - prev.Mileage
		if distance > 0 && cur.VolumeLiters > 0 {
			eff := round1(float64(distance) / cur.VolumeLiters)
			sample.Efficiency = &eff
		}

		samples = append(samples, sample)
	}

	return samples
}

// AverageEfficiency is the unweighted mean of the defined per-interval
// efficiencies, nil when no interval could be evaluated.
func AverageEfficiency(recs []*fueling.Record) *float64 {
	var (
		sum   float64
		count int
	)

	for _, s := range IntervalEfficiencies(recs) {
		if s.Efficiency == nil {
			continue
		}

		sum += *s.Efficiency
		count++
	}

	if count == 0 {
		return nil
	}

	avg := round1(sum / float64(count))

	return &avg
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
