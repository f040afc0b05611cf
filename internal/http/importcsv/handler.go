package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/fueling/importcsv"
	"github.com/rafaelbdn/autolog/internal/http/request"
	"github.com/rafaelbdn/autolog/internal/vehicle"
)

type Handler struct {
	importSvc  *importcsv.Service
	fuelingSvc *fueling.Service
	vehicles   *vehicle.Service
}

func NewHandler(importSvc *importcsv.Service, fuelingSvc *fueling.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		fuelingSvc: fuelingSvc,
		vehicles:   vehicles,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type fuelingDTO struct {
	Date         time.Time        `json:"date"`
	Mileage      int              `json:"mileage"`
	FuelType     fueling.FuelType `json:"fuel_type"`
	VolumeLiters float64          `json:"volume_liters"`
	CostPerLiter float64          `json:"cost_per_liter"`
	TotalCost    float64          `json:"total_cost"`
	Station      string           `json:"station"`
}

type conflictDTO struct {
	Incoming   fuelingDTO `json:"incoming"`
	ExistingID uuid.UUID  `json:"existing_id"`
}

type importConflictResponse struct {
	New       []fuelingDTO  `json:"new"`
	Conflicts []conflictDTO `json:"conflicts"`
}

type importSuccessResponse struct {
	Imported int         `json:"imported"`
	IDs      []uuid.UUID `json:"ids"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := h.fuelingSvc.List(r.Context(), userID, vehicleID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	result := importcsv.Detect(existing, params)

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]fuelingDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}

		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming:   toParamsDTO(c.Incoming),
				ExistingID: c.Existing.ID,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	h.createBatch(w, r, userID, vehicleID, result.New)
}

type confirmRequest struct {
	Records []fuelingDTO `json:"records"`
}

// confirmImport creates the rows the user kept after reviewing conflicts.
func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	vehicleID, err := request.VehicleID(r, h.vehicles, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]fueling.CreateParams, 0, len(req.Records))
	for _, d := range req.Records {
		params = append(params, fueling.CreateParams{
			Date:         d.Date,
			Mileage:      d.Mileage,
			FuelType:     d.FuelType,
			VolumeLiters: d.VolumeLiters,
			CostPerLiter: d.CostPerLiter,
			TotalCost:    d.TotalCost,
			Station:      d.Station,
		})
	}

	h.createBatch(w, r, userID, vehicleID, params)
}

func (h *Handler) createBatch(w http.ResponseWriter, r *http.Request, userID, vehicleID uuid.UUID, params []fueling.CreateParams) {
	created, err := h.fuelingSvc.CreateBatch(r.Context(), userID, vehicleID, params)
	if err != nil && len(created) == 0 {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err != nil {
		slog.Error("import stopped mid-batch", "created", len(created), "error", err)
	}

	ids := make([]uuid.UUID, len(created))
	for i, rec := range created {
		ids[i] = rec.ID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{
		Imported: len(created),
		IDs:      ids,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toParamsDTO(p fueling.CreateParams) fuelingDTO {
	return fuelingDTO{
		Date:         p.Date,
		Mileage:      p.Mileage,
		FuelType:     p.FuelType,
		VolumeLiters: p.VolumeLiters,
		CostPerLiter: p.CostPerLiter,
		TotalCost:    p.TotalCost,
		Station:      p.Station,
	}
}
