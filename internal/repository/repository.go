package repository

import (
	"context"

	"forklift-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	// ListPrivileged returns every staff, admin and owner account; used to
	// fan out in-app notifications for new rental requests.
	ListPrivileged(ctx context.Context) ([]domain.User, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Equipment, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rt *domain.RentalRequest) error
	GetByID(ctx context.Context, id string) (*domain.RentalRequest, error)
	Update(ctx context.Context, rt *domain.RentalRequest) error
	// ListByEquipment returns requests for one unit filtered to the given
	// statuses (all statuses when empty), without denormalized summaries.
	ListByEquipment(ctx context.Context, equipmentID string, statuses []domain.RentalStatus) ([]domain.RentalRequest, error)
	// ListByRequester and ListAll carry denormalized equipment (and, for
	// ListAll, requester) summaries for display.
	ListByRequester(ctx context.Context, requesterID string) ([]domain.RentalRequest, error)
	ListAll(ctx context.Context) ([]domain.RentalRequest, error)

	// ActivateWithCascade commits an approval as one transaction: the
	// request row, the equipment availability flip, and the rejection of
	// every id in rejectIDs with the given reason.
	ActivateWithCascade(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment, rejectIDs []string, reason string) error
	// UpdateWithEquipment commits a request row and an equipment
	// availability flip as one transaction (completion path).
	UpdateWithEquipment(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}

type AnalyticsRepository interface {
	KPIs(ctx context.Context) (*domain.AnalyticsKPIs, error)
	MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	TopEquipment(ctx context.Context, limit int32) ([]domain.EquipmentUsage, error)
	TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerActivity, error)
}
