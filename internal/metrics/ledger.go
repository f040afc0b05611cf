// Package metrics holds the derived figures shown on the dashboard and alert
// views. Every function here is a pure computation over the records it is
// handed; nothing is cached or persisted, so recomputation is always safe.
package metrics

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

// Source tells where a mileage point came from.
type Source string

const (
	SourceManual  Source = "Manual"
	SourceFueling Source = "Fueling"
)

// MileagePoint is one odometer observation, either entered by hand or implied
// by a fill-up.
type MileagePoint struct {
	ID      uuid.UUID
	Date    time.Time
	Mileage int
	Source  Source
}

// PointsFromFuelings projects fill-ups onto the mileage ledger.
func PointsFromFuelings(recs []*fueling.Record) []MileagePoint {
	points := make([]MileagePoint, len(recs))
	for i, rec := range recs {
		points[i] = MileagePoint{
			ID:      rec.ID,
			Date:    rec.Date,
			Mileage: rec.Mileage,
			Source:  SourceFueling,
		}
	}

	return points
}

// MergeLedger combines manual and fueling mileage points into one ledger,
// most recent date first; within a tied date the higher reading wins.
func MergeLedger(groups ...[]MileagePoint) []MileagePoint {
	var ledger []MileagePoint
	for _, g := range groups {
		ledger = append(ledger, g...)
	}

	sort.SliceStable(ledger, func(i, j int) bool {
		if !ledger[i].Date.Equal(ledger[j].Date) {
			return ledger[i].Date.After(ledger[j].Date)
		}

		return ledger[i].Mileage > ledger[j].Mileage
	})

	return ledger
}

// CurrentMileage is the head of the merged ledger, or 0 when nothing has been
// recorded yet.
func CurrentMileage(ledger []MileagePoint) int {
	if len(ledger) == 0 {
		return 0
	}

	return ledger[0].Mileage
}
