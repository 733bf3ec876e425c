package service

import (
	"context"
	"time"

	"forklift-rental-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, phone, address, password string) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName, phone, address, password string) (*domain.User, error)
}

type FleetService interface {
	AddEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListFleet(ctx context.Context) ([]domain.Equipment, error)
	// UpdateEquipment updates descriptive attributes only; the
	// availability pair is owned by the booking service.
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)
	// SetMaintenance moves a unit between AVAILABLE and MAINTENANCE. A
	// RENTED unit cannot be moved.
	SetMaintenance(ctx context.Context, id string, underMaintenance bool) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

// BookingService is the rental lifecycle state machine. Every mutating
// call is serialized per equipment unit; a returned error means no record
// changed.
type BookingService interface {
	CreateRequest(ctx context.Context, requesterID, equipmentID string, startDate, endDate time.Time) (*domain.RentalRequest, error)
	Approve(ctx context.Context, requestID string) (*domain.RentalRequest, error)
	Reject(ctx context.Context, requestID, reason string) (*domain.RentalRequest, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*domain.RentalRequest, error)
	Complete(ctx context.Context, requestID string) (*domain.RentalRequest, error)

	GetRequest(ctx context.Context, callerID string, privileged bool, requestID string) (*domain.RentalRequest, error)
	ListAll(ctx context.Context) ([]domain.RentalRequest, error)
	ListMine(ctx context.Context, requesterID string) ([]domain.RentalRequest, error)
	// Availability reports the current availability pair for one unit.
	Availability(ctx context.Context, equipmentID string) (domain.EquipmentStatus, *time.Time, error)
}

type NotificationService interface {
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}

type AnalyticsService interface {
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)
}

// EmailService sends customer-facing lifecycle mail. Failures are logged
// by callers and never fail a transition.
type EmailService interface {
	SendRentalApprovalNotification(ctx context.Context, to, name, equipmentName string, startDate, endDate time.Time) error
	SendRentalRejectionNotification(ctx context.Context, to, name, equipmentName, reason string) error
	SendReturnReminder(ctx context.Context, to, name, equipmentName string, endDate time.Time) error
}
