package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/station"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListStations(ctx context.Context) ([]*station.Station, error) {
	query := `SELECT id, name, brand, lat, lng, created_at FROM gas_stations ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing stations: %w", err)
	}
	defer rows.Close()

	var stations []*station.Station

	for rows.Next() {
		var st station.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.Brand, &st.Lat, &st.Lng, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}

		stations = append(stations, &st)
	}

	return stations, rows.Err()
}

func (s *Store) RecentPrices(ctx context.Context, fuelType fueling.FuelType, stationName string, limit int) ([]float64, error) {
	query := `
		SELECT cost_per_liter
		FROM fueling_records
		WHERE fuel_type = $1
	`

	args := []any{fuelType}

	if stationName != "" {
		query += ` AND station = $2`
		args = append(args, stationName)
	}

	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT %d", limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recent prices: %w", err)
	}
	defer rows.Close()

	var prices []float64

	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning price: %w", err)
		}

		prices = append(prices, p)
	}

	return prices, rows.Err()
}
