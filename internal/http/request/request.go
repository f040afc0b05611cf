// Package request holds helpers shared by the handler packages.
package request

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/auth"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

var (
	ErrNoUser    = errors.New("no authenticated user on request")
	ErrNoVehicle = errors.New("no vehicle selected and no active vehicle set")
)

// UserID pulls the authenticated user id placed on the context by the auth
// middleware.
func UserID(r *http.Request) (uuid.UUID, error) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		return uuid.Nil, ErrNoUser
	}

	return id, nil
}

// VehicleID resolves which vehicle a request is scoped to: the vehicle_id
// query parameter when present, the user's active vehicle otherwise.
func VehicleID(r *http.Request, vehicles *vehicle.Service, userID uuid.UUID) (uuid.UUID, error) {
	if s := r.URL.Query().Get("vehicle_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, errors.New("invalid vehicle_id")
		}

		return id, nil
	}

	active, err := vehicles.Active(r.Context(), userID)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return uuid.Nil, ErrNoVehicle
		}

		return uuid.Nil, err
	}

	return active.ID, nil
}
