// Package dashboard assembles the derived figures for the dashboard and
// alerts views from the three record collections. All derivation lives in the
// metrics package; this service only fetches inputs and applies it.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/maintenance"
	"github.com/rafaelbdn/autolog/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=dashboard
type FuelingSource interface {
	List(ctx context.Context, userID, vehicleID uuid.UUID) ([]*fueling.Record, error)
}

type MaintenanceSource interface {
	List(ctx context.Context, userID, vehicleID uuid.UUID) ([]*maintenance.Record, error)
}

type MileageSource interface {
	Ledger(ctx context.Context, userID, vehicleID uuid.UUID) ([]metrics.MileagePoint, error)
}

type Service struct {
	fuelings     FuelingSource
	maintenances MaintenanceSource
	mileages     MileageSource
}

func NewService(fuelings FuelingSource, maintenances MaintenanceSource, mileages MileageSource) *Service {
	return &Service{
		fuelings:     fuelings,
		maintenances: maintenances,
		mileages:     mileages,
	}
}

// Summary is everything the dashboard shows for the active vehicle.
type Summary struct {
	CurrentMileage    int
	AverageEfficiency *float64
	Efficiencies      []metrics.EfficiencySample
	Maintenance       metrics.MaintenanceSummary
	Alerts            []metrics.Alert
}

// Summary recomputes the dashboard figures from scratch. Alerts come back in
// the dashboard order (km-unit alerts ranked ahead of date alerts).
func (s *Service) Summary(ctx context.Context, userID, vehicleID uuid.UUID, now time.Time) (*Summary, error) {
	fuelings, err := s.fuelings.List(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	maintenances, err := s.maintenances.List(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.mileages.Ledger(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	current := metrics.CurrentMileage(ledger)

	alerts := append(
		metrics.MileageAlerts(maintenances, current),
		metrics.DateAlerts(maintenances, now)...,
	)
	metrics.SortByUrgencyKMFirst(alerts)

	return &Summary{
		CurrentMileage:    current,
		AverageEfficiency: metrics.AverageEfficiency(fuelings),
		Efficiencies:      metrics.IntervalEfficiencies(fuelings),
		Maintenance:       metrics.AggregateMaintenance(maintenances, now),
		Alerts:            alerts,
	}, nil
}

// Alerts is the full prioritized list for the alerts page (urgency order,
// unit ignored on ties).
func (s *Service) Alerts(ctx context.Context, userID, vehicleID uuid.UUID, now time.Time) ([]metrics.Alert, error) {
	maintenances, err := s.maintenances.List(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.mileages.Ledger(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	alerts := append(
		metrics.MileageAlerts(maintenances, metrics.CurrentMileage(ledger)),
		metrics.DateAlerts(maintenances, now)...,
	)
	metrics.SortByUrgency(alerts)

	return alerts, nil
}
