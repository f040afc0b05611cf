package fueling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMileage  = errors.New("mileage must be greater than zero")
	ErrInvalidVolume   = errors.New("volume must be greater than zero")
	ErrInvalidFuelType = errors.New("unknown fuel type")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fueling
type Repository interface {
	CreateRecord(ctx context.Context, rec *Record) error
	GetRecord(ctx context.Context, userID, id uuid.UUID) (*Record, error)
	ListRecords(ctx context.Context, userID, vehicleID uuid.UUID) ([]*Record, error)
	UpdateRecord(ctx context.Context, rec *Record) error
	DeleteRecord(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date         time.Time
	Mileage      int
	FuelType     FuelType
	VolumeLiters float64
	CostPerLiter float64
	TotalCost    float64
	Station      string
}

func (s *Service) Create(ctx context.Context, userID, vehicleID uuid.UUID, params CreateParams) (*Record, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	rec := &Record{
		UserID:       userID,
		VehicleID:    vehicleID,
		Date:         params.Date,
		Mileage:      params.Mileage,
		FuelType:     params.FuelType,
		VolumeLiters: params.VolumeLiters,
		CostPerLiter: params.CostPerLiter,
		TotalCost:    params.TotalCost,
		Station:      params.Station,
	}

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// CreateBatch creates records one by one in order. A failed create aborts the
// remainder but does not undo earlier creates; the created prefix is returned
// with the error.
func (s *Service) CreateBatch(ctx context.Context, userID, vehicleID uuid.UUID, params []CreateParams) ([]*Record, error) {
	for _, p := range params {
		if err := validate(p); err != nil {
			return nil, err
		}
	}

	var created []*Record

	for _, p := range params {
		rec, err := s.Create(ctx, userID, vehicleID, p)
		if err != nil {
			return created, err
		}

		created = append(created, rec)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, userID, id)
}

// List returns the vehicle's fill-ups, most recent date first.
func (s *Service) List(ctx context.Context, userID, vehicleID uuid.UUID) ([]*Record, error) {
	return s.repo.ListRecords(ctx, userID, vehicleID)
}

func (s *Service) Update(ctx context.Context, rec *Record) error {
	if !rec.FuelType.Valid() {
		return ErrInvalidFuelType
	}

	if rec.Mileage <= 0 {
		return ErrInvalidMileage
	}

	if rec.VolumeLiters <= 0 {
		return ErrInvalidVolume
	}

	return s.repo.UpdateRecord(ctx, rec)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, userID, id)
}

func validate(p CreateParams) error {
	if !p.FuelType.Valid() {
		return ErrInvalidFuelType
	}

	if p.Mileage <= 0 {
		return ErrInvalidMileage
	}

	if p.VolumeLiters <= 0 {
		return ErrInvalidVolume
	}

	return nil
}
