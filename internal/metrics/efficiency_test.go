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

func floatPtr(v float64) *float64 { return &v }

func fuelingRecord(date time.Time, mileage int, volume float64) *fueling.Record {
	return &fueling.Record{
		ID:           uuid.New(),
		Date:         date,
		Mileage:      mileage,
		FuelType:     fueling.FuelGasoline,
		VolumeLiters: volume,
	}
}

func TestIntervalEfficiencies(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		recs []*fueling.Record
		want []*float64
	}

	tests := []testCase{
		{
			name: "NoRecords",
			recs: nil,
			want: nil,
		},
		{
			name: "SingleRecord",
			recs: []*fueling.Record{fuelingRecord(day, 10000, 40)},
			want: nil,
		},
		{
			name: "SimpleInterval",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 7), 10400, 40),
			},
			want: []*float64{floatPtr(10.0)},
		},
		{
			name: "UnorderedInput",
			recs: []*fueling.Record{
				fuelingRecord(day.AddDate(0, 0, 7), 10400, 40),
				fuelingRecord(day, 10000, 35),
			},
			want: []*float64{floatPtr(10.0)},
		},
		{
			name: "ZeroDistanceInterval",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 3), 10000, 20),
				fuelingRecord(day.AddDate(0, 0, 7), 10400, 40),
			},
			want: []*float64{nil, floatPtr(10.0)},
		},
		{
			name: "ZeroVolumeInterval",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 7), 10400, 0),
			},
			want: []*float64{nil},
		},
		{
			name: "RoundsToOneDecimal",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 7), 10333, 30),
			},
			want: []*float64{floatPtr(11.1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.IntervalEfficiencies(tt.recs)

			require.Len(t, got, len(tt.want))

			for i, want := range tt.want {
				if want == nil {
					assert.Nil(t, got[i].Efficiency, "sample %d", i)
					continue
				}

				require.NotNil(t, got[i].Efficiency, "sample %d", i)
				assert.InDelta(t, *want, *got[i].Efficiency, 0.001, "sample %d", i)
			}
		})
	}
}

func TestIntervalEfficiencies_UndefinedSampleStaysVisible(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	recs := []*fueling.Record{
		fuelingRecord(day, 10000, 35),
		fuelingRecord(day.AddDate(0, 0, 3), 10000, 20),
	}

	got := metrics.IntervalEfficiencies(recs)

	require.Len(t, got, 1)
	assert.Equal(t, recs[1].ID, got[0].RecordID)
	assert.Equal(t, 10000, got[0].Mileage)
	assert.Nil(t, got[0].Efficiency)
}

func TestAverageEfficiency(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		recs []*fueling.Record
		want *float64
	}

	tests := []testCase{
		{
			name: "NoIntervals",
			recs: []*fueling.Record{fuelingRecord(day, 10000, 40)},
			want: nil,
		},
		{
			name: "AllIntervalsUndefined",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 3), 10000, 20),
			},
			want: nil,
		},
		{
			name: "UnweightedMean",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 7), 10400, 40),
				fuelingRecord(day.AddDate(0, 0, 14), 10800, 20),
			},
			// (10.0 + 20.0) / 2, not distance-weighted.
			want: floatPtr(15.0),
		},
		{
			name: "SkipsUndefinedIntervals",
			recs: []*fueling.Record{
				fuelingRecord(day, 10000, 35),
				fuelingRecord(day.AddDate(0, 0, 3), 10000, 20),
				fuelingRecord(day.AddDate(0, 0, 7), 10400, 40),
			},
			want: floatPtr(10.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.AverageEfficiency(tt.recs)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.001)
		})
	}
}
