package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
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

const selectRecordColumns = `
	id, user_id, vehicle_id, date, mileage, fuel_type,
	volume_liters, cost_per_liter, total_cost, station, created_at, updated_at
`

func scanRecord(s scanner) (*fueling.Record, error) {
	var rec fueling.Record

	var fuelType string

	if err := s.Scan(
		&rec.ID, &rec.UserID, &rec.VehicleID, &rec.Date, &rec.Mileage, &fuelType,
		&rec.VolumeLiters, &rec.CostPerLiter, &rec.TotalCost, &rec.Station,
		&rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.FuelType = fueling.FuelType(fuelType)

	return &rec, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec *fueling.Record) error {
	query := `
		INSERT INTO fueling_records
			(user_id, vehicle_id, date, mileage, fuel_type, volume_liters, cost_per_liter, total_cost, station)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.UserID, rec.VehicleID, rec.Date, rec.Mileage, rec.FuelType,
		rec.VolumeLiters, rec.CostPerLiter, rec.TotalCost, rec.Station,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating fueling record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, userID, id uuid.UUID) (*fueling.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM fueling_records WHERE id = $1 AND user_id = $2`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fueling.ErrNotFound
		}

		return nil, fmt.Errorf("getting fueling record: %w", err)
	}

	return rec, nil
}

func (s *Store) ListRecords(ctx context.Context, userID, vehicleID uuid.UUID) ([]*fueling.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM fueling_records
		WHERE user_id = $1 AND vehicle_id = $2
		ORDER BY date DESC, mileage DESC`

	rows, err := s.db.QueryContext(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("listing fueling records: %w", err)
	}
	defer rows.Close()

	var recs []*fueling.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fueling record: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) UpdateRecord(ctx context.Context, rec *fueling.Record) error {
	query := `
		UPDATE fueling_records
		SET date = $1, mileage = $2, fuel_type = $3, volume_liters = $4,
			cost_per_liter = $5, total_cost = $6, station = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		rec.Date, rec.Mileage, rec.FuelType, rec.VolumeLiters,
		rec.CostPerLiter, rec.TotalCost, rec.Station, rec.ID, rec.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating fueling record: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fueling.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM fueling_records WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting fueling record: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fueling.ErrNotFound
	}

	return nil
}
