package maintenance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingType       = errors.New("service type is required")
	ErrMissingCustomType = errors.New("custom type is required for Outro")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrAlreadyCompleted  = errors.New("record is already completed")
	ErrIncompleteRecord  = errors.New("cost and mileage must be filled in before completing")
	ErrInvalidTransition = errors.New("completed records cannot be reopened")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=maintenance
type Repository interface {
	CreateRecord(ctx context.Context, rec *Record) error
	GetRecord(ctx context.Context, userID, id uuid.UUID) (*Record, error)
	ListRecords(ctx context.Context, userID, vehicleID uuid.UUID) ([]*Record, error)
	UpdateRecord(ctx context.Context, rec *Record) error
	DeleteRecord(ctx context.Context, userID, id uuid.UUID) error

	ListServiceTypes(ctx context.Context) ([]string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date                time.Time
	Mileage             int
	Type                string
	CustomType          string
	Description         string
	Cost                float64
	Status              Status
	NextMileage         *int
	NextMileageInterval *int
	NextDate            *time.Time
}

func (s *Service) Create(ctx context.Context, userID, vehicleID uuid.UUID, params CreateParams) (*Record, error) {
	if err := validate(params.Type, params.CustomType, params.Status); err != nil {
		return nil, err
	}

	rec := &Record{
		UserID:              userID,
		VehicleID:           vehicleID,
		Date:                params.Date,
		Mileage:             params.Mileage,
		Type:                params.Type,
		CustomType:          params.CustomType,
		Description:         params.Description,
		Cost:                params.Cost,
		Status:              params.Status,
		NextMileage:         params.NextMileage,
		NextMileageInterval: params.NextMileageInterval,
		NextDate:            params.NextDate,
	}

	deriveNextMileage(rec)

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, userID, id)
}

// List returns the vehicle's maintenance records, most recent date first.
func (s *Service) List(ctx context.Context, userID, vehicleID uuid.UUID) ([]*Record, error) {
	return s.repo.ListRecords(ctx, userID, vehicleID)
}

func (s *Service) Update(ctx context.Context, rec *Record) error {
	if err := validate(rec.Type, rec.CustomType, rec.Status); err != nil {
		return err
	}

	current, err := s.repo.GetRecord(ctx, rec.UserID, rec.ID)
	if err != nil {
		return err
	}

	if current.Status == StatusCompleted && rec.Status != StatusCompleted {
		return ErrInvalidTransition
	}

	deriveNextMileage(rec)

	return s.repo.UpdateRecord(ctx, rec)
}

// MarkComplete is the one-tap shortcut that closes a pending or scheduled
// record. It is rejected when cost or mileage is still zero; those must be
// confirmed through the full edit form before the record can close.
func (s *Service) MarkComplete(ctx context.Context, userID, id uuid.UUID) (*Record, error) {
	rec, err := s.repo.GetRecord(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if rec.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	if rec.Cost == 0 || rec.Mileage == 0 {
		return nil, ErrIncompleteRecord
	}

	rec.Status = StatusCompleted
	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, userID, id)
}

func (s *Service) ServiceTypes(ctx context.Context) ([]string, error) {
	return s.repo.ListServiceTypes(ctx)
}

// deriveNextMileage keeps nextMileage = mileage + interval when an interval is
// set, overriding whatever the caller supplied.
func deriveNextMileage(rec *Record) {
	if rec.NextMileageInterval == nil {
		return
	}

	next := rec.Mileage + *rec.NextMileageInterval
	rec.NextMileage = &next
}

func validate(typ, customType string, status Status) error {
	if typ == "" {
		return ErrMissingType
	}

	if typ == TypeOther && customType == "" {
		return ErrMissingCustomType
	}

	if !status.Valid() {
		return ErrInvalidStatus
	}

	return nil
}
