package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rafaelbdn/autolog/internal/maintenance"
)

// AlertStatus separates targets already passed from targets coming up.
type AlertStatus string

const (
	AlertOverdue  AlertStatus = "Atrasado"
	AlertUpcoming AlertStatus = "Próximo"
)

// Unit is the dimension an alert value is expressed in.
type Unit string

const (
	UnitKM   Unit = "km"
	UnitDays Unit = "dias"
)

const (
	// MileageAlertThreshold is how close (in km) a follow-up mileage target
	// must be before it surfaces as upcoming.
	MileageAlertThreshold = 1000
	// DateAlertThreshold is the equivalent window in days.
	DateAlertThreshold = 30
)

// Alert is an ephemeral warning derived from a completed maintenance record's
// follow-up target. Alerts are recomputed on every read and never stored.
type Alert struct {
	ID         string
	Type       string
	Status     AlertStatus
	Value      int
	Unit       Unit
	NextTarget string
}

// MileageAlerts flags completed records whose follow-up mileage is near or
// past the current odometer reading. With no known mileage there is nothing
// to measure against, so no alerts are produced.
func MileageAlerts(recs []*maintenance.Record, currentMileage int) []Alert {
	if currentMileage == 0 {
		return nil
	}

	var alerts []Alert

	for _, rec := range recs {
		if rec.Status != maintenance.StatusCompleted || rec.NextMileage == nil {
			continue
		}

		next := *rec.NextMileage

		alert := Alert{
			ID:         rec.ID.String() + "-km",
			Type:       rec.Label(),
			Unit:       UnitKM,
			NextTarget: fmt.Sprintf("%d km", next),
		}

		switch {
		case next <= currentMileage:
			alert.Status = AlertOverdue
			alert.Value = currentMileage - next
		case next-currentMileage <= MileageAlertThreshold:
			alert.Status = AlertUpcoming
			alert.Value = next - currentMileage
		default:
			continue
		}

		alerts = append(alerts, alert)
	}

	return alerts
}

// DateAlerts flags completed records whose follow-up date is near or past
// today. now is truncated to local midnight before comparing.
func DateAlerts(recs []*maintenance.Record, now time.Time) []Alert {
	var alerts []Alert

	for _, rec := range recs {
		if rec.Status != maintenance.StatusCompleted || rec.NextDate == nil {
			continue
		}

		diffDays := daysUntil(now, *rec.NextDate)

		alert := Alert{
			ID:         rec.ID.String() + "-date",
			Type:       rec.Label(),
			Unit:       UnitDays,
			NextTarget: rec.NextDate.Format(time.DateOnly),
		}

		switch {
		case diffDays < 0:
			alert.Status = AlertOverdue
			alert.Value = -diffDays
		case diffDays <= DateAlertThreshold:
			alert.Status = AlertUpcoming
			alert.Value = diffDays
		default:
			continue
		}

		alerts = append(alerts, alert)
	}

	return alerts
}

// daysUntil counts whole days from today's midnight to the target's midnight,
// rounding partial days up.
func daysUntil(now, target time.Time) int {
	diff := midnight(target).Sub(midnight(now))
	return int(math.Ceil(diff.Hours() / 24))
}

// SortByUrgency orders alerts for the alerts and maintenance views: overdue
// before upcoming; the most overdue first; the soonest upcoming first.
func SortByUrgency(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return lessUrgent(alerts[i], alerts[j], false)
	})
}

// SortByUrgencyKMFirst is the dashboard ordering. It additionally ranks
// km-unit alerts ahead of dias-unit alerts when status ties, treating mileage
// slippage as more operationally urgent than date slippage. This deliberately
// diverges from SortByUrgency; both orders are user-visible triage policy.
func SortByUrgencyKMFirst(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return lessUrgent(alerts[i], alerts[j], true)
	})
}

func lessUrgent(a, b Alert, kmFirst bool) bool {
	if a.Status != b.Status {
		return a.Status == AlertOverdue
	}

	if kmFirst && a.Unit != b.Unit {
		return a.Unit == UnitKM
	}

	if a.Status == AlertOverdue {
		return a.Value > b.Value
	}

	return a.Value < b.Value
}
