package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/maintenance"
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
	id, user_id, vehicle_id, date, mileage, type, custom_type, description,
	cost, status, next_mileage, next_mileage_interval, next_date, created_at, updated_at
`

func scanRecord(s scanner) (*maintenance.Record, error) {
	var rec maintenance.Record

	var status string

	if err := s.Scan(
		&rec.ID, &rec.UserID, &rec.VehicleID, &rec.Date, &rec.Mileage,
		&rec.Type, &rec.CustomType, &rec.Description, &rec.Cost, &status,
		&rec.NextMileage, &rec.NextMileageInterval, &rec.NextDate,
		&rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.Status = maintenance.Status(status)

	return &rec, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec *maintenance.Record) error {
	query := `
		INSERT INTO maintenance_records
			(user_id, vehicle_id, date, mileage, type, custom_type, description,
			 cost, status, next_mileage, next_mileage_interval, next_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.UserID, rec.VehicleID, rec.Date, rec.Mileage, rec.Type, rec.CustomType,
		rec.Description, rec.Cost, rec.Status, rec.NextMileage,
		rec.NextMileageInterval, rec.NextDate,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating maintenance record: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, userID, id uuid.UUID) (*maintenance.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM maintenance_records WHERE id = $1 AND user_id = $2`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, maintenance.ErrNotFound
		}

		return nil, fmt.Errorf("getting maintenance record: %w", err)
	}

	return rec, nil
}

func (s *Store) ListRecords(ctx context.Context, userID, vehicleID uuid.UUID) ([]*maintenance.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM maintenance_records
		WHERE user_id = $1 AND vehicle_id = $2
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance records: %w", err)
	}
	defer rows.Close()

	var recs []*maintenance.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning maintenance record: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) UpdateRecord(ctx context.Context, rec *maintenance.Record) error {
	query := `
		UPDATE maintenance_records
		SET date = $1, mileage = $2, type = $3, custom_type = $4, description = $5,
			cost = $6, status = $7, next_mileage = $8, next_mileage_interval = $9,
			next_date = $10, updated_at = NOW()
		WHERE id = $11 AND user_id = $12
	`

	res, err := s.db.ExecContext(ctx, query,
		rec.Date, rec.Mileage, rec.Type, rec.CustomType, rec.Description,
		rec.Cost, rec.Status, rec.NextMileage, rec.NextMileageInterval,
		rec.NextDate, rec.ID, rec.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating maintenance record: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return maintenance.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM maintenance_records WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting maintenance record: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return maintenance.ErrNotFound
	}

	return nil
}

func (s *Store) ListServiceTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM service_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing service types: %w", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning service type: %w", err)
		}

		names = append(names, name)
	}

	return names, rows.Err()
}
