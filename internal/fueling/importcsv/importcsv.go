// Package importcsv parses fueling-history spreadsheet exports into fueling
// record params and flags rows that duplicate what is already stored.
package importcsv

import (
	"io"
	"time"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

type Importer interface {
	Parse(r io.Reader) ([]fueling.CreateParams, error)
}

type Service struct {
	parser Importer
}

func NewService() *Service {
	return &Service{parser: NewParser()}
}

func (s *Service) Import(r io.Reader) ([]fueling.CreateParams, error) {
	return s.parser.Parse(r)
}

// Conflict pairs an incoming row with the stored record it duplicates.
type Conflict struct {
	Incoming fueling.CreateParams
	Existing *fueling.Record
}

// Result splits parsed rows into rows safe to insert and duplicates.
type Result struct {
	New       []fueling.CreateParams
	Conflicts []Conflict
}

type dupKey struct {
	Date    string
	Mileage int
	Volume  float64
}

// Detect matches incoming rows against existing records by
// (date, mileage, volume). Duplicates are reported, never inserted.
func Detect(existing []*fueling.Record, incoming []fueling.CreateParams) Result {
	lookup := make(map[dupKey]*fueling.Record, len(existing))

	for _, rec := range existing {
		lookup[dupKey{
			Date:    rec.Date.Format(time.DateOnly),
			Mileage: rec.Mileage,
			Volume:  rec.VolumeLiters,
		}] = rec
	}

	var result Result

	for _, p := range incoming {
		k := dupKey{
			Date:    p.Date.Format(time.DateOnly),
			Mileage: p.Mileage,
			Volume:  p.VolumeLiters,
		}

		if rec, found := lookup[k]; found {
			result.Conflicts = append(result.Conflicts, Conflict{Incoming: p, Existing: rec})
			continue
		}

		result.New = append(result.New, p)
	}

	return result
}
