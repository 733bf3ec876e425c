package service

import (
	"context"
	"fmt"
	"time"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/logger"
	"forklift-rental-backend/internal/repository"
	"forklift-rental-backend/internal/utils"
)

type bookingService struct {
	rentalRepo repository.RentalRepository
	equipRepo  repository.EquipmentRepository
	userRepo   repository.UserRepository
	noteRepo   repository.NotificationRepository
	emailSvc   EmailService
	locks      *equipmentLocks
}

func NewBookingService(
	rentalRepo repository.RentalRepository,
	equipRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		rentalRepo: rentalRepo,
		equipRepo:  equipRepo,
		userRepo:   userRepo,
		noteRepo:   noteRepo,
		emailSvc:   emailSvc,
		locks:      newEquipmentLocks(),
	}
}

func (s *bookingService) CreateRequest(ctx context.Context, requesterID, equipmentID string, startDate, endDate time.Time) (*domain.RentalRequest, error) {
	if !endDate.After(startDate) {
		return nil, domain.ErrInvalidDateRange
	}

	unlock := s.locks.acquire(equipmentID)
	defer unlock()

	eq, err := s.equipRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	// Only an already-approved rental blocks creation; competing PENDING
	// requests may pile up and are resolved at approval time.
	active, err := s.rentalRepo.ListByEquipment(ctx, equipmentID, []domain.RentalStatus{domain.RentalStatusActive})
	if err != nil {
		return nil, err
	}
	if domain.HasConflict(startDate, endDate, active, "") {
		return nil, domain.ErrBookingConflict
	}

	rt := &domain.RentalRequest{
		RequesterID:    requesterID,
		EquipmentID:    equipmentID,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalCostCents: utils.RentalCost(startDate, endDate, eq.DailyRateCents),
		Status:         domain.RentalStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return nil, err
	}

	s.notifyStaff(ctx, rt, eq)
	return rt, nil
}

func (s *bookingService) Approve(ctx context.Context, requestID string) (*domain.RentalRequest, error) {
	rt, err := s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(rt.EquipmentID)
	defer unlock()

	// Re-read under the lock; the record may have moved while we waited.
	rt, err = s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !rt.Status.CanTransitionTo(domain.RentalStatusActive) {
		return nil, domain.ErrInvalidStateTransition
	}

	eq, err := s.equipRepo.GetByID(ctx, rt.EquipmentID)
	if err != nil {
		return nil, err
	}

	// Defensive re-check: another request may have gone ACTIVE since this
	// one was created.
	active, err := s.rentalRepo.ListByEquipment(ctx, rt.EquipmentID, []domain.RentalStatus{domain.RentalStatusActive})
	if err != nil {
		return nil, err
	}
	if domain.HasConflict(rt.StartDate, rt.EndDate, active, rt.ID) {
		return nil, domain.ErrBookingConflict
	}

	pending, err := s.rentalRepo.ListByEquipment(ctx, rt.EquipmentID, []domain.RentalStatus{domain.RentalStatusPending})
	if err != nil {
		return nil, err
	}
	cascadeIDs := domain.ConflictingIDs(rt.StartDate, rt.EndDate, pending, rt.ID)

	rt.Status = domain.RentalStatusActive
	eq.Status = domain.EquipmentStatusRented
	end := rt.EndDate
	eq.NextAvailableDate = &end

	if err := s.rentalRepo.ActivateWithCascade(ctx, rt, eq, cascadeIDs, domain.RejectionReasonConflict); err != nil {
		return nil, err
	}
	logger.Info("Rental approved", "rentalID", rt.ID, "equipmentID", eq.ID, "cascadeRejected", len(cascadeIDs))

	s.notifyRequester(ctx, rt, eq, "Rental Approved",
		fmt.Sprintf("Your rental request for %s %s was approved", eq.Make, eq.Model), "RENTAL_APPROVED")
	if requester, err := s.userRepo.GetByID(ctx, rt.RequesterID); err == nil {
		if err := s.emailSvc.SendRentalApprovalNotification(ctx, requester.Email, requester.FirstName, eq.Make+" "+eq.Model, rt.StartDate, rt.EndDate); err != nil {
			logger.Warn("Approval email failed", "rentalID", rt.ID, "error", err)
		}
	}
	for _, victim := range pending {
		for _, id := range cascadeIDs {
			if victim.ID != id {
				continue
			}
			note := &domain.Notification{
				UserID:  victim.RequesterID,
				Title:   "Rental Rejected",
				Message: domain.RejectionReasonConflict,
				Attributes: map[string]string{
					"type":      "RENTAL_REJECTED",
					"rental_id": victim.ID,
				},
			}
			if err := s.noteRepo.Create(ctx, note); err != nil {
				logger.Warn("Cascade notification failed", "rentalID", victim.ID, "error", err)
			}
		}
	}

	return rt, nil
}

func (s *bookingService) Reject(ctx context.Context, requestID, reason string) (*domain.RentalRequest, error) {
	rt, err := s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(rt.EquipmentID)
	defer unlock()

	rt, err = s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !rt.Status.CanTransitionTo(domain.RentalStatusRejected) {
		return nil, domain.ErrInvalidStateTransition
	}

	if reason == "" {
		reason = domain.RejectionReasonDeclined
	}
	rt.Status = domain.RentalStatusRejected
	rt.RejectionReason = reason
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	eq, eqErr := s.equipRepo.GetByID(ctx, rt.EquipmentID)
	if eqErr == nil {
		s.notifyRequester(ctx, rt, eq, "Rental Rejected",
			fmt.Sprintf("Your rental request for %s %s was rejected", eq.Make, eq.Model), "RENTAL_REJECTED")
		if requester, err := s.userRepo.GetByID(ctx, rt.RequesterID); err == nil {
			if err := s.emailSvc.SendRentalRejectionNotification(ctx, requester.Email, requester.FirstName, eq.Make+" "+eq.Model, reason); err != nil {
				logger.Warn("Rejection email failed", "rentalID", rt.ID, "error", err)
			}
		}
	}

	return rt, nil
}

func (s *bookingService) Cancel(ctx context.Context, requesterID, requestID string) (*domain.RentalRequest, error) {
	rt, err := s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rt.RequesterID != requesterID {
		return nil, domain.ErrUnauthorized
	}

	unlock := s.locks.acquire(rt.EquipmentID)
	defer unlock()

	rt, err = s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !rt.Status.CanTransitionTo(domain.RentalStatusCancelled) {
		return nil, domain.ErrInvalidStateTransition
	}

	rt.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *bookingService) Complete(ctx context.Context, requestID string) (*domain.RentalRequest, error) {
	rt, err := s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(rt.EquipmentID)
	defer unlock()

	rt, err = s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !rt.Status.CanTransitionTo(domain.RentalStatusCompleted) {
		return nil, domain.ErrInvalidStateTransition
	}

	eq, err := s.equipRepo.GetByID(ctx, rt.EquipmentID)
	if err != nil {
		return nil, err
	}

	rt.Status = domain.RentalStatusCompleted
	if rt.ActualReturnDate == nil {
		now := time.Now()
		rt.ActualReturnDate = &now
	}
	eq.Status = domain.EquipmentStatusAvailable
	eq.NextAvailableDate = nil

	if err := s.rentalRepo.UpdateWithEquipment(ctx, rt, eq); err != nil {
		return nil, err
	}
	logger.Info("Rental completed", "rentalID", rt.ID, "equipmentID", eq.ID)

	s.notifyRequester(ctx, rt, eq, "Rental Completed",
		fmt.Sprintf("Your rental of %s %s is complete", eq.Make, eq.Model), "RENTAL_COMPLETED")
	return rt, nil
}

func (s *bookingService) GetRequest(ctx context.Context, callerID string, privileged bool, requestID string) (*domain.RentalRequest, error) {
	rt, err := s.rentalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !privileged && rt.RequesterID != callerID {
		return nil, domain.ErrUnauthorized
	}
	return rt, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]domain.RentalRequest, error) {
	return s.rentalRepo.ListAll(ctx)
}

func (s *bookingService) ListMine(ctx context.Context, requesterID string) ([]domain.RentalRequest, error) {
	return s.rentalRepo.ListByRequester(ctx, requesterID)
}

func (s *bookingService) Availability(ctx context.Context, equipmentID string) (domain.EquipmentStatus, *time.Time, error) {
	eq, err := s.equipRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return "", nil, err
	}
	return eq.Status, eq.NextAvailableDate, nil
}

// notifyStaff fans a new-request notification out to every privileged
// account.
func (s *bookingService) notifyStaff(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment) {
	staff, err := s.userRepo.ListPrivileged(ctx)
	if err != nil {
		logger.Warn("Staff lookup for notification failed", "rentalID", rt.ID, "error", err)
		return
	}
	for _, u := range staff {
		note := &domain.Notification{
			UserID:  u.ID,
			Title:   "New Rental Request",
			Message: fmt.Sprintf("New request for %s %s", eq.Make, eq.Model),
			Attributes: map[string]string{
				"type":      "RENTAL_REQUEST",
				"rental_id": rt.ID,
			},
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.Warn("Staff notification failed", "userID", u.ID, "error", err)
		}
	}
}

func (s *bookingService) notifyRequester(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment, title, message, noteType string) {
	note := &domain.Notification{
		UserID:  rt.RequesterID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":      noteType,
			"rental_id": rt.ID,
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Requester notification failed", "rentalID", rt.ID, "error", err)
	}
}
