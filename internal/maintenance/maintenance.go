package maintenance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("maintenance record not found")

// Status is the lifecycle state of a maintenance record. The only transition
// is Pendente/Agendado -> Concluído; completed records are never reopened.
type Status string

const (
	StatusCompleted Status = "Concluído"
	StatusPending   Status = "Pendente"
	StatusScheduled Status = "Agendado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusScheduled:
		return true
	}

	return false
}

// TypeOther is the sentinel service type that carries a user-supplied label.
const TypeOther = "Outro"

// Record is one maintenance event, completed or planned. Completed records may
// carry follow-up targets (next mileage and/or next date) that feed the alert
// generators.
type Record struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	VehicleID           uuid.UUID
	Date                time.Time
	Mileage             int
	Type                string
	CustomType          string
	Description         string
	Cost                float64
	Status              Status
	NextMileage         *int
	NextMileageInterval *int
	NextDate            *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// Label is the display name of the service: the custom label for "Outro"
// records, the type itself otherwise.
func (r *Record) Label() string {
	if r.Type == TypeOther && r.CustomType != "" {
		return r.CustomType
	}

	return r.Type
}
