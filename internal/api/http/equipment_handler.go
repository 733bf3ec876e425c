package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/service"
)

// EquipmentHandler handles fleet management and availability lookups
type EquipmentHandler struct {
	fleetService   service.FleetService
	bookingService service.BookingService
}

func NewEquipmentHandler(fleetService service.FleetService, bookingService service.BookingService) *EquipmentHandler {
	return &EquipmentHandler{
		fleetService:   fleetService,
		bookingService: bookingService,
	}
}

type equipmentRequest struct {
	Make           string `json:"make"`
	Model          string `json:"model"`
	Capacity       string `json:"capacity"`
	Power          string `json:"power"`
	Torque         string `json:"torque"`
	Fuel           string `json:"fuel"`
	ImageURL       string `json:"image_url"`
	DailyRateCents int32  `json:"daily_rate_cents"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Make == "" || req.Model == "" {
		writeError(w, http.StatusBadRequest, "make and model are required")
		return
	}
	if req.DailyRateCents <= 0 {
		writeError(w, http.StatusBadRequest, "daily rate must be positive")
		return
	}

	eq := &domain.Equipment{
		Make:           req.Make,
		Model:          req.Model,
		Capacity:       req.Capacity,
		Power:          req.Power,
		Torque:         req.Torque,
		Fuel:           req.Fuel,
		ImageURL:       req.ImageURL,
		DailyRateCents: req.DailyRateCents,
	}
	if err := h.fleetService.AddEquipment(r.Context(), eq); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	eq, err := h.fleetService.GetEquipment(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	fleet, err := h.fleetService.ListFleet(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fleet)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	eq := &domain.Equipment{
		ID:             id,
		Make:           req.Make,
		Model:          req.Model,
		Capacity:       req.Capacity,
		Power:          req.Power,
		Torque:         req.Torque,
		Fuel:           req.Fuel,
		ImageURL:       req.ImageURL,
		DailyRateCents: req.DailyRateCents,
	}
	updated, err := h.fleetService.UpdateEquipment(r.Context(), eq)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type maintenanceRequest struct {
	UnderMaintenance bool `json:"under_maintenance"`
}

func (h *EquipmentHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	eq, err := h.fleetService.SetMaintenance(r.Context(), id, req.UnderMaintenance)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.fleetService.DeleteEquipment(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "equipment deleted"})
}

type availabilityResponse struct {
	EquipmentID       string                 `json:"equipment_id"`
	Status            domain.EquipmentStatus `json:"status"`
	NextAvailableDate *time.Time             `json:"next_available_date,omitempty"`
}

func (h *EquipmentHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	status, next, err := h.bookingService.Availability(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{
		EquipmentID:       id,
		Status:            status,
		NextAvailableDate: next,
	})
}
