package metrics

import (
	"time"

	"github.com/rafaelbdn/autolog/internal/maintenance"
)

// MaintenanceSummary is the aggregate block shown at the top of the
// maintenance view.
type MaintenanceSummary struct {
	TotalCost      float64
	PendingCount   int
	ScheduledCount int
	NextScheduled  *maintenance.Record
}

// AggregateMaintenance sums completed cost, counts pending and scheduled
// records, and finds the scheduled record closest in the future (date >= today).
func AggregateMaintenance(recs []*maintenance.Record, now time.Time) MaintenanceSummary {
	today := midnight(now)

	var summary MaintenanceSummary

	for _, rec := range recs {
		switch rec.Status {
		case maintenance.StatusCompleted:
			summary.TotalCost += rec.Cost
		case maintenance.StatusPending:
			summary.PendingCount++
		case maintenance.StatusScheduled:
			summary.ScheduledCount++

			if midnight(rec.Date).Before(today) {
				continue
			}

			if summary.NextScheduled == nil || rec.Date.Before(summary.NextScheduled.Date) {
				summary.NextScheduled = rec
			}
		}
	}

	return summary
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
