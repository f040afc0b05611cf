package mileage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/metrics"
)

var ErrMileageNotAhead = errors.New("mileage must be greater than the current mileage")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=mileage
type Repository interface {
	CreateRecord(ctx context.Context, rec *Record) error
	ListRecords(ctx context.Context, userID, vehicleID uuid.UUID) ([]*Record, error)
	DeleteRecord(ctx context.Context, userID, id uuid.UUID) error
}

// FuelingSource supplies the fill-ups whose odometer readings take part in
// resolving the current mileage.
type FuelingSource interface {
	List(ctx context.Context, userID, vehicleID uuid.UUID) ([]*fueling.Record, error)
}

type Service struct {
	repo     Repository
	fuelings FuelingSource
}

func NewService(repo Repository, fuelings FuelingSource) *Service {
	return &Service{repo: repo, fuelings: fuelings}
}

type CreateParams struct {
	Date    time.Time
	Mileage int
}

// Create records a manual odometer reading. The reading must be strictly
// ahead of the current mileage resolved over both manual entries and
// fill-ups (which also rejects readings <= 0 on an empty history).
func (s *Service) Create(ctx context.Context, userID, vehicleID uuid.UUID, params CreateParams) (*Record, error) {
	current, err := s.CurrentMileage(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	if params.Mileage <= current {
		return nil, ErrMileageNotAhead
	}

	rec := &Record{
		UserID:    userID,
		VehicleID: vehicleID,
		Date:      params.Date,
		Mileage:   params.Mileage,
	}

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) List(ctx context.Context, userID, vehicleID uuid.UUID) ([]*Record, error) {
	return s.repo.ListRecords(ctx, userID, vehicleID)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, userID, id)
}

// Ledger merges manual entries and fill-up readings, most recent first.
func (s *Service) Ledger(ctx context.Context, userID, vehicleID uuid.UUID) ([]metrics.MileagePoint, error) {
	manuals, err := s.repo.ListRecords(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	fuelings, err := s.fuelings.List(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	return metrics.MergeLedger(Points(manuals), metrics.PointsFromFuelings(fuelings)), nil
}

// CurrentMileage resolves the vehicle's most recent odometer reading.
func (s *Service) CurrentMileage(ctx context.Context, userID, vehicleID uuid.UUID) (int, error) {
	ledger, err := s.Ledger(ctx, userID, vehicleID)
	if err != nil {
		return 0, err
	}

	return metrics.CurrentMileage(ledger), nil
}

// Points projects manual records onto the mileage ledger.
func Points(recs []*Record) []metrics.MileagePoint {
	points := make([]metrics.MileagePoint, len(recs))
	for i, rec := range recs {
		points[i] = metrics.MileagePoint{
			ID:      rec.ID,
			Date:    rec.Date,
			Mileage: rec.Mileage,
			Source:  metrics.SourceManual,
		}
	}

	return points
}
