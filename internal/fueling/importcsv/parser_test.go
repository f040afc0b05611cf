package importcsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/fueling/importcsv"
)

func TestParser_Parse(t *testing.T) {
	p := importcsv.NewParser()

	t.Run("FullExport", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros;Preço/Litro;Total;Posto\n" +
			"15/03/2024;10400;Gasolina;40,5;5,59;226,40;Posto Central\n" +
			"22/03/2024;10800;Etanol;38;3,99;151,62;Posto Paulista\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got[0].Date)
		assert.Equal(t, 10400, got[0].Mileage)
		assert.Equal(t, fueling.FuelGasoline, got[0].FuelType)
		assert.InDelta(t, 40.5, got[0].VolumeLiters, 0.001)
		assert.InDelta(t, 5.59, got[0].CostPerLiter, 0.001)
		assert.InDelta(t, 226.40, got[0].TotalCost, 0.001)
		assert.Equal(t, "Posto Central", got[0].Station)

		assert.Equal(t, fueling.FuelEthanol, got[1].FuelType)
		assert.Equal(t, "Posto Paulista", got[1].Station)
	})

	t.Run("BannerRowsBeforeHeader", func(t *testing.T) {
		input := "Histórico de abastecimentos\n" +
			"Gerado em 01/04/2024\n" +
			"Data;Quilometragem;Combustível;Litros;Preço/Litro;Total;Posto\n" +
			"15/03/2024;10400;Gasolina;40,5;5,59;226,40;Posto Central\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("FooterRowsWithoutDateSkipped", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros\n" +
			"15/03/2024;10400;Gasolina;40,5\n" +
			"\n" +
			"Total geral;;;40,5\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("MissingTotalDerivedFromUnitPrice", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros;Preço/Litro\n" +
			"15/03/2024;10400;Gasolina;40;5,50\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.InDelta(t, 220.0, got[0].TotalCost, 0.001)
	})

	t.Run("MissingUnitPriceDerivedFromTotal", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros;Total\n" +
			"15/03/2024;10400;Gasolina;40;220\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.InDelta(t, 5.50, got[0].CostPerLiter, 0.001)
	})

	t.Run("ISODatesAccepted", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros\n" +
			"2024-03-15;10400;Gasolina;40\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got[0].Date)
	})

	t.Run("DecimalPointAccepted", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros\n" +
			"15/03/2024;10400;Gasolina;40.5\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.InDelta(t, 40.5, got[0].VolumeLiters, 0.001)
	})

	t.Run("ThousandsSeparatorWithDecimalComma", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros;Total\n" +
			"15/03/2024;10400;Diesel;400;1.234,56\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.InDelta(t, 1234.56, got[0].TotalCost, 0.001)
	})

	t.Run("NoHeader", func(t *testing.T) {
		input := "just;some;random;cells\n1;2;3;4\n"

		_, err := p.Parse(strings.NewReader(input))
		assert.ErrorContains(t, err, "no fueling history header")
	})

	t.Run("UnknownFuelType", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros\n" +
			"15/03/2024;10400;Querosene;40\n"

		_, err := p.Parse(strings.NewReader(input))
		assert.ErrorContains(t, err, "unknown fuel type")
	})

	t.Run("InvalidMileage", func(t *testing.T) {
		input := "Data;Quilometragem;Combustível;Litros\n" +
			"15/03/2024;abc;Gasolina;40\n"

		_, err := p.Parse(strings.NewReader(input))
		assert.ErrorContains(t, err, "invalid mileage")
	})

	t.Run("Windows1252Export", func(t *testing.T) {
		// "Combustível" and "Preço/Litro" with 0xED and 0xE7 bytes.
		input := "Data;Quilometragem;Combust\xedvel;Litros;Pre\xe7o/Litro\n" +
			"15/03/2024;10400;Gasolina;40;5,50\n"

		got, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.InDelta(t, 5.50, got[0].CostPerLiter, 0.001)
	})
}

func TestDetect(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	existing := []*fueling.Record{
		{Date: day, Mileage: 10400, VolumeLiters: 40.5},
		{Date: day.AddDate(0, 0, 7), Mileage: 10800, VolumeLiters: 38},
	}

	incoming := []fueling.CreateParams{
		// Exact duplicate of the first stored record.
		{Date: day, Mileage: 10400, VolumeLiters: 40.5},
		// Same date and mileage but different volume: not a duplicate.
		{Date: day, Mileage: 10400, VolumeLiters: 41},
		// Same mileage and volume but different date: not a duplicate.
		{Date: day.AddDate(0, 0, 1), Mileage: 10400, VolumeLiters: 40.5},
		{Date: day.AddDate(0, 0, 14), Mileage: 11200, VolumeLiters: 39},
	}

	got := importcsv.Detect(existing, incoming)

	require.Len(t, got.Conflicts, 1)
	assert.Equal(t, existing[0], got.Conflicts[0].Existing)
	assert.Equal(t, 10400, got.Conflicts[0].Incoming.Mileage)

	require.Len(t, got.New, 3)
}

func TestDetect_TimeOfDayIgnored(t *testing.T) {
	existing := []*fueling.Record{
		{Date: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), Mileage: 10400, VolumeLiters: 40},
	}

	incoming := []fueling.CreateParams{
		{Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Mileage: 10400, VolumeLiters: 40},
	}

	got := importcsv.Detect(existing, incoming)

	assert.Empty(t, got.New)
	assert.Len(t, got.Conflicts, 1)
}
