package maintenance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/http/request"
	"github.com/rafaelbdn/autolog/internal/maintenance"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Handler struct {
	svc      *maintenance.Service
	vehicles *vehicle.Service
}

func NewHandler(svc *maintenance.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{svc: svc, vehicles: vehicles}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/types", h.serviceTypes)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/complete", h.complete)
}

type createMaintenanceRequest struct {
	Date                time.Time          `json:"date"`
	Mileage             int                `json:"mileage"`
	Type                string             `json:"type"`
	CustomType          string             `json:"custom_type"`
	Description         string             `json:"description"`
	Cost                float64            `json:"cost"`
	Status              maintenance.Status `json:"status"`
	NextMileage         *int               `json:"next_mileage,omitempty"`
	NextMileageInterval *int               `json:"next_mileage_interval,omitempty"`
	NextDate            *time.Time         `json:"next_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), userID, vehicleID, maintenance.CreateParams{
		Date:                req.Date,
		Mileage:             req.Mileage,
		Type:                req.Type,
		CustomType:          req.CustomType,
		Description:         req.Description,
		Cost:                req.Cost,
		Status:              req.Status,
		NextMileage:         req.NextMileage,
		NextMileageInterval: req.NextMileageInterval,
		NextDate:            req.NextDate,
	})
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recs, err := h.svc.List(r.Context(), userID, vehicleID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(recs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) serviceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ServiceTypes(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string][]string{"types": types}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "maintenance record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateMaintenanceRequest struct {
	Date                *time.Time          `json:"date,omitempty"`
	Mileage             *int                `json:"mileage,omitempty"`
	Type                *string             `json:"type,omitempty"`
	CustomType          *string             `json:"custom_type,omitempty"`
	Description         *string             `json:"description,omitempty"`
	Cost                *float64            `json:"cost,omitempty"`
	Status              *maintenance.Status `json:"status,omitempty"`
	NextMileage         *int                `json:"next_mileage,omitempty"`
	NextMileageInterval *int                `json:"next_mileage_interval,omitempty"`
	NextDate            *time.Time          `json:"next_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "maintenance record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	applyUpdate(rec, req)

	if err := h.svc.Update(r.Context(), rec); err != nil {
		if isValidationErr(err) || errors.Is(err, maintenance.ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// complete is the mark-complete shortcut. A 422 tells the client the record
// still needs cost/mileage confirmed, so it should open the full edit form.
func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.MarkComplete(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrNotFound):
			http.Error(w, "maintenance record not found", http.StatusNotFound)
		case errors.Is(err, maintenance.ErrIncompleteRecord):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, maintenance.ErrAlreadyCompleted):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "maintenance record not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func applyUpdate(rec *maintenance.Record, req updateMaintenanceRequest) {
	if req.Date != nil {
		rec.Date = *req.Date
	}

	if req.Mileage != nil {
		rec.Mileage = *req.Mileage
	}

	if req.Type != nil {
		rec.Type = *req.Type
	}

	if req.CustomType != nil {
		rec.CustomType = *req.CustomType
	}

	if req.Description != nil {
		rec.Description = *req.Description
	}

	if req.Cost != nil {
		rec.Cost = *req.Cost
	}

	if req.Status != nil {
		rec.Status = *req.Status
	}

	if req.NextMileage != nil {
		rec.NextMileage = req.NextMileage
	}

	if req.NextMileageInterval != nil {
		rec.NextMileageInterval = req.NextMileageInterval
	}

	if req.NextDate != nil {
		rec.NextDate = req.NextDate
	}
}

func isValidationErr(err error) bool {
	return errors.Is(err, maintenance.ErrMissingType) ||
		errors.Is(err, maintenance.ErrMissingCustomType) ||
		errors.Is(err, maintenance.ErrInvalidStatus)
}
