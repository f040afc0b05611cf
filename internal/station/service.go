package station

import (
	"context"
	"sort"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

const (
	// nearbyRadiusKM bounds the nearby-station search.
	nearbyRadiusKM = 5.0

	averagePriceSample = 50
	stationPriceSample = 10
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=station
type Repository interface {
	ListStations(ctx context.Context) ([]*Station, error)

	// RecentPrices returns cost-per-liter values for the newest matching
	// fueling records across all users, newest first, at most limit values.
	// An empty stationName matches every station.
	RecentPrices(ctx context.Context, fuelType fueling.FuelType, stationName string, limit int) ([]float64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AveragePrice is the unweighted mean cost per liter over the 50 most-recent
// fueling records for the fuel type, optionally narrowed to one station.
// Nil means no matching record exists.
func (s *Service) AveragePrice(ctx context.Context, fuelType fueling.FuelType, stationName string) (*float64, error) {
	prices, err := s.repo.RecentPrices(ctx, fuelType, stationName, averagePriceSample)
	if err != nil {
		return nil, err
	}

	return mean(prices), nil
}

// NearbyStation is a station within the search radius annotated with its
// distance and recent price picture.
type NearbyStation struct {
	Station      *Station
	DistanceKM   float64
	AveragePrice *float64
	RecordCount  int
}

// Nearby filters every known station to those within 5 km of the user,
// sorted closest first, each carrying the mean of its 10 most-recent prices
// for the fuel type.
func (s *Service) Nearby(ctx context.Context, lat, lng float64, fuelType fueling.FuelType) ([]NearbyStation, error) {
	stations, err := s.repo.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	var nearby []NearbyStation

	for _, st := range stations {
		d := Distance(lat, lng, st.Lat, st.Lng)
		if d > nearbyRadiusKM {
			continue
		}

		prices, err := s.repo.RecentPrices(ctx, fuelType, st.Name, stationPriceSample)
		if err != nil {
			return nil, err
		}

		nearby = append(nearby, NearbyStation{
			Station:      st,
			DistanceKM:   d,
			AveragePrice: mean(prices),
			RecordCount:  len(prices),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})

	return nearby, nil
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	m := sum / float64(len(values))

	return &m
}
