package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vehicle not found")

// Vehicle owns all fueling, maintenance and mileage records scoped to it.
type Vehicle struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Model     string
	Year      int
	Plate     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
