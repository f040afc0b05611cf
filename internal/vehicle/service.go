package vehicle

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMissingModel = errors.New("model is required")
	ErrInvalidYear  = errors.New("year is invalid")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vehicle
type Repository interface {
	CreateVehicle(ctx context.Context, v *Vehicle) error
	GetVehicle(ctx context.Context, userID, id uuid.UUID) (*Vehicle, error)
	ListVehicles(ctx context.Context, userID uuid.UUID) ([]*Vehicle, error)
	UpdateVehicle(ctx context.Context, v *Vehicle) error
	DeleteVehicle(ctx context.Context, userID, id uuid.UUID) error

	SetActiveVehicle(ctx context.Context, userID uuid.UUID, vehicleID *uuid.UUID) error
	GetActiveVehicle(ctx context.Context, userID uuid.UUID) (*Vehicle, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Model string
	Year  int
	Plate string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Vehicle, error) {
	if params.Model == "" {
		return nil, ErrMissingModel
	}

	if params.Year < 1900 {
		return nil, ErrInvalidYear
	}

	v := &Vehicle{
		UserID: userID,
		Model:  params.Model,
		Year:   params.Year,
		Plate:  params.Plate,
	}

	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Vehicle, error) {
	return s.repo.GetVehicle(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx, userID)
}

func (s *Service) Update(ctx context.Context, v *Vehicle) error {
	if v.Model == "" {
		return ErrMissingModel
	}

	return s.repo.UpdateVehicle(ctx, v)
}

// Delete removes the vehicle; the active pointer is cleared by the store when
// the deleted vehicle was the active one.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteVehicle(ctx, userID, id)
}

// SetActive marks the vehicle as the one all record views are scoped to.
func (s *Service) SetActive(ctx context.Context, userID, vehicleID uuid.UUID) error {
	if _, err := s.repo.GetVehicle(ctx, userID, vehicleID); err != nil {
		return err
	}

	return s.repo.SetActiveVehicle(ctx, userID, &vehicleID)
}

// Active returns the user's active vehicle, or ErrNotFound when none is set.
func (s *Service) Active(ctx context.Context, userID uuid.UUID) (*Vehicle, error) {
	return s.repo.GetActiveVehicle(ctx, userID)
}
