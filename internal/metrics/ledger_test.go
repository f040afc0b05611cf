package metrics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/metrics"
)

func manualPoint(date time.Time, mileage int) metrics.MileagePoint {
	return metrics.MileagePoint{
		ID:      uuid.New(),
		Date:    date,
		Mileage: mileage,
		Source:  metrics.SourceManual,
	}
}

func TestMergeLedger(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	manuals := []metrics.MileagePoint{
		manualPoint(day, 10000),
		manualPoint(day.AddDate(0, 0, 10), 10900),
	}

	fuelings := metrics.PointsFromFuelings([]*fueling.Record{
		fuelingRecord(day.AddDate(0, 0, 5), 10400, 40),
		fuelingRecord(day.AddDate(0, 0, 10), 10850, 38),
	})

	got := metrics.MergeLedger(manuals, fuelings)

	require.Len(t, got, 4)

	// Most recent first; the tied date ranks the higher reading first.
	assert.Equal(t, 10900, got[0].Mileage)
	assert.Equal(t, metrics.SourceManual, got[0].Source)
	assert.Equal(t, 10850, got[1].Mileage)
	assert.Equal(t, metrics.SourceFueling, got[1].Source)
	assert.Equal(t, 10400, got[2].Mileage)
	assert.Equal(t, 10000, got[3].Mileage)
}

func TestCurrentMileage(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name   string
		ledger []metrics.MileagePoint
		want   int
	}

	tests := []testCase{
		{
			name:   "EmptyLedger",
			ledger: nil,
			want:   0,
		},
		{
			name: "HeadOfLedger",
			ledger: metrics.MergeLedger([]metrics.MileagePoint{
				manualPoint(day, 10000),
				manualPoint(day.AddDate(0, 0, 3), 10200),
			}),
			want: 10200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.CurrentMileage(tt.ledger))
		})
	}
}

func TestPointsFromFuelings(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rec := fuelingRecord(day, 10400, 40)

	got := metrics.PointsFromFuelings([]*fueling.Record{rec})

	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, 10400, got[0].Mileage)
	assert.Equal(t, metrics.SourceFueling, got[0].Source)
}
