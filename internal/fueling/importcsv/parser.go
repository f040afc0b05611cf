package importcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/rafaelbdn/autolog/internal/encoding"
	"github.com/rafaelbdn/autolog/internal/fueling"
)

// Parser reads semicolon-separated fueling history exports. The header row is
// located by column names, so leading banner rows are tolerated. Expected
// columns (case-insensitive): data, quilometragem, combustível, litros,
// preço/litro, total, posto.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var requiredCols = []string{"data", "quilometragem", "combustível", "litros"}

var fuelTypes = map[string]fueling.FuelType{
	"gasolina": fueling.FuelGasoline,
	"etanol":   fueling.FuelEthanol,
	"diesel":   fueling.FuelDiesel,
	"gnv":      fueling.FuelCNG,
}

func (p *Parser) Parse(r io.Reader) ([]fueling.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no fueling history header found: need columns %s", strings.Join(requiredCols, ", "))
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

type colIndex map[string]int

// findHeader scans rows for one containing every required column name.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if matches(cols) {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func matches(cols colIndex) bool {
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]fueling.CreateParams, error) {
	var params []fueling.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(cellValue(row, cols["data"]))
		if !ok {
			// Footer and blank rows carry no date; skip them.
			continue
		}

		mileage, err := strconv.Atoi(cellValue(row, cols["quilometragem"]))
		if err != nil || mileage <= 0 {
			return nil, fmt.Errorf("row %d: invalid mileage", rowNum)
		}

		fuelType, ok := fuelTypes[strings.ToLower(cellValue(row, cols["combustível"]))]
		if !ok {
			return nil, fmt.Errorf("row %d: unknown fuel type %q", rowNum, cellValue(row, cols["combustível"]))
		}

		volume, err := parseDecimal(cellValue(row, cols["litros"]))
		if err != nil || volume <= 0 {
			return nil, fmt.Errorf("row %d: invalid volume", rowNum)
		}

		perLiter, _ := parseDecimal(cellValue(row, cols["preço/litro"]))
		total, _ := parseDecimal(cellValue(row, cols["total"]))

		// Fill in whichever cost field the export omitted.
		switch {
		case total == 0:
			_, perLiter, total = fueling.ResolveCost(volume, perLiter, total, fueling.FieldCostPerLiter)
		case perLiter == 0:
			_, perLiter, total = fueling.ResolveCost(volume, perLiter, total, fueling.FieldTotalCost)
		}

		params = append(params, fueling.CreateParams{
			Date:         date,
			Mileage:      mileage,
			FuelType:     fuelType,
			VolumeLiters: volume,
			CostPerLiter: perLiter,
			TotalCost:    total,
			Station:      cellValue(row, cols["posto"]),
		})
	}

	return params, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{"02/01/2006", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseDecimal accepts both decimal comma and decimal point.
func parseDecimal(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}

	if strings.Contains(s, ",") {
		// Decimal comma: dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return strconv.ParseFloat(s, 64)
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
