package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/mileage"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateRecord(ctx context.Context, rec *mileage.Record) error {
	query := `
		INSERT INTO mileage_records (user_id, vehicle_id, date, mileage)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.UserID, rec.VehicleID, rec.Date, rec.Mileage,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating mileage record: %w", err)
	}

	return nil
}

func (s *Store) ListRecords(ctx context.Context, userID, vehicleID uuid.UUID) ([]*mileage.Record, error) {
	query := `
		SELECT id, user_id, vehicle_id, date, mileage, created_at
		FROM mileage_records
		WHERE user_id = $1 AND vehicle_id = $2
		ORDER BY date DESC, mileage DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("listing mileage records: %w", err)
	}
	defer rows.Close()

	var recs []*mileage.Record

	for rows.Next() {
		var rec mileage.Record
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.VehicleID, &rec.Date, &rec.Mileage, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mileage record: %w", err)
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

func (s *Store) DeleteRecord(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM mileage_records WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting mileage record: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return mileage.ErrNotFound
	}

	return nil
}
