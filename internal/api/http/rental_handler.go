package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/service"
	"forklift-rental-backend/internal/utils"
)

// RentalHandler handles the rental request lifecycle
type RentalHandler struct {
	bookingService service.BookingService
}

func NewRentalHandler(bookingService service.BookingService) *RentalHandler {
	return &RentalHandler{bookingService: bookingService}
}

type createRentalRequest struct {
	EquipmentID string `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.EquipmentID == "" {
		writeError(w, http.StatusBadRequest, "equipment_id is required")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt, err := h.bookingService.CreateRequest(r.Context(), claims.UserID, req.EquipmentID, startDate, endDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rt)
}

func (h *RentalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.bookingService.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	rentals, err := h.bookingService.ListMine(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	id := mux.Vars(r)["id"]
	rt, err := h.bookingService.GetRequest(r.Context(), claims.UserID, claims.Role.Privileged(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

type updateStatusRequest struct {
	Status          domain.RentalStatus `json:"status"`
	RejectionReason string              `json:"rejection_reason"`
}

// UpdateStatus dispatches a requested target status onto the matching
// lifecycle transition. Approving, rejecting and completing require a
// privileged role; cancelling is reserved for the requester.
func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	id := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var (
		rt  *domain.RentalRequest
		err error
	)
	switch req.Status {
	case domain.RentalStatusActive:
		if !claims.Role.Privileged() {
			writeError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		rt, err = h.bookingService.Approve(r.Context(), id)
	case domain.RentalStatusRejected:
		if !claims.Role.Privileged() {
			writeError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		rt, err = h.bookingService.Reject(r.Context(), id, req.RejectionReason)
	case domain.RentalStatusCompleted:
		if !claims.Role.Privileged() {
			writeError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		rt, err = h.bookingService.Complete(r.Context(), id)
	case domain.RentalStatusCancelled:
		rt, err = h.bookingService.Cancel(r.Context(), claims.UserID, id)
	default:
		writeError(w, http.StatusBadRequest, "unsupported target status")
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rt)
}
