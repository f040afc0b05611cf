package mileage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("mileage record not found")

// Record is a manual odometer snapshot. Fill-ups contribute mileage points of
// their own; only hand-entered readings live in this collection.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VehicleID uuid.UUID
	Date      time.Time
	Mileage   int
	CreatedAt time.Time
}
