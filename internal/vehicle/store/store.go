package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	if err := s.Scan(
		&v.ID, &v.UserID, &v.Model, &v.Year, &v.Plate, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &v, nil
}

const selectVehicleColumns = `id, user_id, model, year, plate, created_at, updated_at`

func (s *Store) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (user_id, model, year, plate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.UserID, v.Model, v.Year, v.Plate,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetVehicle(ctx context.Context, userID, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + ` FROM vehicles WHERE id = $1 AND user_id = $2`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context, userID uuid.UUID) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + ` FROM vehicles WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

func (s *Store) UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles
		SET model = $1, year = $2, plate = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`

	res, err := s.db.ExecContext(ctx, query, v.Model, v.Year, v.Plate, v.ID, v.UserID)
	if err != nil {
		return fmt.Errorf("updating vehicle: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return vehicle.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return vehicle.ErrNotFound
	}

	return nil
}

func (s *Store) SetActiveVehicle(ctx context.Context, userID uuid.UUID, vehicleID *uuid.UUID) error {
	query := `UPDATE users SET active_vehicle_id = $1 WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, vehicleID, userID); err != nil {
		return fmt.Errorf("setting active vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetActiveVehicle(ctx context.Context, userID uuid.UUID) (*vehicle.Vehicle, error) {
	query := `
		SELECT v.id, v.user_id, v.model, v.year, v.plate, v.created_at, v.updated_at
		FROM vehicles v
		JOIN users u ON u.active_vehicle_id = v.id
		WHERE u.id = $1
	`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting active vehicle: %w", err)
	}

	return v, nil
}
