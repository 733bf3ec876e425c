package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusRejected  RentalStatus = "REJECTED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// CanTransitionTo reports whether the lifecycle allows moving from s to
// target. The lifecycle only moves forward: PENDING fans out to ACTIVE,
// REJECTED or CANCELLED; ACTIVE can only complete; terminal states never
// resurrect.
func (s RentalStatus) CanTransitionTo(target RentalStatus) bool {
	switch s {
	case RentalStatusPending:
		return target == RentalStatusActive || target == RentalStatusRejected || target == RentalStatusCancelled
	case RentalStatusActive:
		return target == RentalStatusCompleted
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible from s.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusCompleted || s == RentalStatusRejected || s == RentalStatusCancelled
}

// Rejection reasons written by the booking service. REJECTED records
// always carry a non-empty reason.
const (
	RejectionReasonConflict = "Schedule Conflict: booked by another customer for overlapping dates."
	RejectionReasonDeclined = "Your request was declined by the administrator."
	RejectionReasonExpired  = "Request expired: the start date passed before approval."
)

// RentalRequest is one booking attempt for one equipment unit over an
// inclusive calendar date range. Records are append-only; status mutations
// go through the booking service only.
type RentalRequest struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	EquipmentID string    `json:"equipment_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	// ActualReturnDate is set once on completion and never altered.
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`
	// TotalCostCents is snapshot from the equipment's daily rate at
	// creation time; later rate changes do not affect it.
	TotalCostCents  int32        `json:"total_cost_cents"`
	Status          RentalStatus `json:"status"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`

	// Populated on listings for display.
	Requester *UserSummary      `json:"requester,omitempty"`
	Equipment *EquipmentSummary `json:"equipment,omitempty"`
}
