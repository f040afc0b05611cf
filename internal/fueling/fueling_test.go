package fueling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

func TestResolveCost(t *testing.T) {
	type testCase struct {
		name             string
		volume           float64
		costPerLiter     float64
		total            float64
		edited           fueling.CostField
		wantCostPerLiter float64
		wantTotal        float64
	}

	tests := []testCase{
		{
			name:             "EditingVolumeRecomputesTotal",
			volume:           40,
			costPerLiter:     5.50,
			total:            100,
			edited:           fueling.FieldVolume,
			wantCostPerLiter: 5.50,
			wantTotal:        220,
		},
		{
			name:             "EditingUnitPriceRecomputesTotal",
			volume:           40,
			costPerLiter:     6,
			total:            220,
			edited:           fueling.FieldCostPerLiter,
			wantCostPerLiter: 6,
			wantTotal:        240,
		},
		{
			name:             "EditingTotalRecomputesUnitPrice",
			volume:           40,
			costPerLiter:     5.50,
			total:            230,
			edited:           fueling.FieldTotalCost,
			wantCostPerLiter: 5.75,
			wantTotal:        230,
		},
		{
			name:             "EditingTotalWithZeroVolumeLeavesUnitPrice",
			volume:           0,
			costPerLiter:     5.50,
			total:            230,
			edited:           fueling.FieldTotalCost,
			wantCostPerLiter: 5.50,
			wantTotal:        230,
		},
		{
			name:             "RecomputedTotalRoundsToCents",
			volume:           33.333,
			costPerLiter:     5.99,
			total:            0,
			edited:           fueling.FieldVolume,
			wantCostPerLiter: 5.99,
			wantTotal:        199.66,
		},
		{
			name:             "RecomputedUnitPriceRoundsToCents",
			volume:           37,
			costPerLiter:     0,
			total:            200,
			edited:           fueling.FieldTotalCost,
			wantCostPerLiter: 5.41,
			wantTotal:        200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volume, costPerLiter, total := fueling.ResolveCost(tt.volume, tt.costPerLiter, tt.total, tt.edited)

			assert.InDelta(t, tt.volume, volume, 0.001)
			assert.InDelta(t, tt.wantCostPerLiter, costPerLiter, 0.001)
			assert.InDelta(t, tt.wantTotal, total, 0.001)
		})
	}
}

// Re-deriving the untouched field after an edit keeps the identity
// total = volume x price stable under repeated edits.
func TestResolveCost_RoundTrip(t *testing.T) {
	volume, price, total := fueling.ResolveCost(40, 5.50, 0, fueling.FieldCostPerLiter)
	assert.InDelta(t, 220.0, total, 0.001)

	volume, price, total = fueling.ResolveCost(volume, price, total, fueling.FieldTotalCost)
	assert.InDelta(t, 5.50, price, 0.001)
	assert.InDelta(t, 220.0, total, 0.001)
}

func TestFuelTypeValid(t *testing.T) {
	assert.True(t, fueling.FuelGasoline.Valid())
	assert.True(t, fueling.FuelEthanol.Valid())
	assert.True(t, fueling.FuelDiesel.Valid())
	assert.True(t, fueling.FuelCNG.Valid())

	assert.False(t, fueling.FuelType("").Valid())
	assert.False(t, fueling.FuelType("Querosene").Valid())
}
