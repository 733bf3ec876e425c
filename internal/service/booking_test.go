package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forklift-rental-backend/internal/domain"
)

func newBookingFixture() (*MockRentalRepo, *MockEquipmentRepo, *MockUserRepo, *MockNotificationRepo, *MockEmailService, BookingService) {
	rentalRepo := new(MockRentalRepo)
	equipRepo := new(MockEquipmentRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := NewBookingService(rentalRepo, equipRepo, userRepo, noteRepo, emailSvc)
	return rentalRepo, equipRepo, userRepo, noteRepo, emailSvc, svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_CreateRequest(t *testing.T) {
	ctx := context.Background()

	forklift := &domain.Equipment{
		ID:             "eq-1",
		Make:           "Toyota",
		Model:          "8FGU25",
		DailyRateCents: 15000,
		Status:         domain.EquipmentStatusAvailable,
	}

	t.Run("Success", func(t *testing.T) {
		rentalRepo, equipRepo, userRepo, noteRepo, _, svc := newBookingFixture()

		equipRepo.On("GetByID", ctx, "eq-1").Return(forklift, nil)
		rentalRepo.On("ListByEquipment", ctx, "eq-1", []domain.RentalStatus{domain.RentalStatusActive}).
			Return([]domain.RentalRequest{}, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalRequest")).Return(nil)
		userRepo.On("ListPrivileged", ctx).Return([]domain.User{{ID: "staff-1"}}, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		rt, err := svc.CreateRequest(ctx, "user-1", "eq-1", date(2025, time.June, 10), date(2025, time.June, 12))
		assert.NoError(t, err)
		assert.NotNil(t, rt)
		assert.Equal(t, domain.RentalStatusPending, rt.Status)
		assert.Equal(t, int32(3*15000), rt.TotalCostCents)
		assert.Empty(t, rt.RejectionReason)
		noteRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.Notification"))
	})

	t.Run("End date not after start date", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt, err := svc.CreateRequest(ctx, "user-1", "eq-1", date(2025, time.June, 10), date(2025, time.June, 10))
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		assert.Nil(t, rt)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Overlap with active rental", func(t *testing.T) {
		rentalRepo, equipRepo, _, _, _, svc := newBookingFixture()

		equipRepo.On("GetByID", ctx, "eq-1").Return(forklift, nil)
		rentalRepo.On("ListByEquipment", ctx, "eq-1", []domain.RentalStatus{domain.RentalStatusActive}).
			Return([]domain.RentalRequest{{
				ID:        "rt-active",
				StartDate: date(2025, time.June, 11),
				EndDate:   date(2025, time.June, 15),
				Status:    domain.RentalStatusActive,
			}}, nil)

		rt, err := svc.CreateRequest(ctx, "user-1", "eq-1", date(2025, time.June, 10), date(2025, time.June, 12))
		assert.ErrorIs(t, err, domain.ErrBookingConflict)
		assert.Nil(t, rt)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Back to back ranges do not conflict", func(t *testing.T) {
		rentalRepo, equipRepo, userRepo, noteRepo, _, svc := newBookingFixture()

		equipRepo.On("GetByID", ctx, "eq-1").Return(forklift, nil)
		rentalRepo.On("ListByEquipment", ctx, "eq-1", []domain.RentalStatus{domain.RentalStatusActive}).
			Return([]domain.RentalRequest{{
				ID:        "rt-active",
				StartDate: date(2025, time.June, 1),
				EndDate:   date(2025, time.June, 10),
				Status:    domain.RentalStatusActive,
			}}, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalRequest")).Return(nil)
		userRepo.On("ListPrivileged", ctx).Return([]domain.User{}, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		rt, err := svc.CreateRequest(ctx, "user-1", "eq-1", date(2025, time.June, 10), date(2025, time.June, 12))
		assert.NoError(t, err)
		assert.NotNil(t, rt)
	})

	t.Run("Unknown equipment", func(t *testing.T) {
		_, equipRepo, _, _, _, svc := newBookingFixture()

		equipRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

		rt, err := svc.CreateRequest(ctx, "user-1", "missing", date(2025, time.June, 10), date(2025, time.June, 12))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, rt)
	})
}

func TestBookingService_Approve(t *testing.T) {
	ctx := context.Background()

	pendingRental := func() *domain.RentalRequest {
		return &domain.RentalRequest{
			ID:          "rt-1",
			RequesterID: "user-1",
			EquipmentID: "eq-1",
			StartDate:   date(2025, time.June, 10),
			EndDate:     date(2025, time.June, 15),
			Status:      domain.RentalStatusPending,
		}
	}
	availableForklift := func() *domain.Equipment {
		return &domain.Equipment{
			ID:             "eq-1",
			Make:           "Toyota",
			Model:          "8FGU25",
			DailyRateCents: 15000,
			Status:         domain.EquipmentStatusAvailable,
		}
	}

	t.Run("Success with cascade rejection", func(t *testing.T) {
		rentalRepo, equipRepo, userRepo, noteRepo, emailSvc, svc := newBookingFixture()

		rt := pendingRental()
		eq := availableForklift()
		overlappingPending := domain.RentalRequest{
			ID:          "rt-2",
			RequesterID: "user-2",
			EquipmentID: "eq-1",
			StartDate:   date(2025, time.June, 12),
			EndDate:     date(2025, time.June, 18),
			Status:      domain.RentalStatusPending,
		}
		disjointPending := domain.RentalRequest{
			ID:          "rt-3",
			RequesterID: "user-3",
			EquipmentID: "eq-1",
			StartDate:   date(2025, time.July, 1),
			EndDate:     date(2025, time.July, 5),
			Status:      domain.RentalStatusPending,
		}

		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)
		equipRepo.On("GetByID", ctx, "eq-1").Return(eq, nil)
		rentalRepo.On("ListByEquipment", ctx, "eq-1", []domain.RentalStatus{domain.RentalStatusActive}).
			Return([]domain.RentalRequest{}, nil)
		rentalRepo.On("ListByEquipment", ctx, "eq-1", []domain.RentalStatus{domain.RentalStatusPending}).
			Return([]domain.RentalRequest{*rt, overlappingPending, disjointPending}, nil)
		rentalRepo.On("ActivateWithCascade", ctx, rt, eq, []string{"rt-2"}, domain.RejectionReasonConflict).Return(nil)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Email: "u1@test.com", FirstName: "Ulla"}, nil)
		emailSvc.On("SendRentalApprovalNotification", ctx, "u1@test.com", "Ulla", "Toyota 8FGU25", rt.StartDate, rt.EndDate).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.Approve(ctx, "rt-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusActive, res.Status)
		assert.Equal(t, domain.EquipmentStatusRented, eq.Status)
		if assert.NotNil(t, eq.NextAvailableDate) {
			assert.Equal(t, rt.EndDate, *eq.NextAvailableDate)
		}
		rentalRepo.AssertCalled(t, "ActivateWithCascade", ctx, rt, eq, []string{"rt-2"}, domain.RejectionReasonConflict)
	})

	t.Run("Conflict with already active rental", func(t *testing.T) {
		rentalRepo, equipRepo, _, _, _, svc := newBookingFixture()

		rt := pendingRental()
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)
		equipRepo.On("GetByID", ctx, "eq-1").Return(availableForklift(), nil)
		rentalRepo.On("ListByEquipment", ctx, "eq-1", []domain.RentalStatus{domain.RentalStatusActive}).
			Return([]domain.RentalRequest{{
				ID:        "rt-other",
				StartDate: date(2025, time.June, 14),
				EndDate:   date(2025, time.June, 20),
				Status:    domain.RentalStatusActive,
			}}, nil)

		res, err := svc.Approve(ctx, "rt-1")
		assert.ErrorIs(t, err, domain.ErrBookingConflict)
		assert.Nil(t, res)
		rentalRepo.AssertNotCalled(t, "ActivateWithCascade", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already rejected request", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt := pendingRental()
		rt.Status = domain.RentalStatusRejected
		rt.RejectionReason = domain.RejectionReasonDeclined
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)

		res, err := svc.Approve(ctx, "rt-1")
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Nil(t, res)
	})
}

func TestBookingService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults empty reason", func(t *testing.T) {
		rentalRepo, equipRepo, userRepo, noteRepo, emailSvc, svc := newBookingFixture()

		rt := &domain.RentalRequest{
			ID:          "rt-1",
			RequesterID: "user-1",
			EquipmentID: "eq-1",
			StartDate:   date(2025, time.June, 10),
			EndDate:     date(2025, time.June, 15),
			Status:      domain.RentalStatusPending,
		}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)
		rentalRepo.On("Update", ctx, rt).Return(nil)
		equipRepo.On("GetByID", ctx, "eq-1").Return(&domain.Equipment{ID: "eq-1", Make: "Toyota", Model: "8FGU25"}, nil)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Email: "u1@test.com", FirstName: "Ulla"}, nil)
		emailSvc.On("SendRentalRejectionNotification", ctx, "u1@test.com", "Ulla", "Toyota 8FGU25", domain.RejectionReasonDeclined).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.Reject(ctx, "rt-1", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusRejected, res.Status)
		assert.Equal(t, domain.RejectionReasonDeclined, res.RejectionReason)
	})

	t.Run("Cannot reject active rental", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt := &domain.RentalRequest{ID: "rt-1", EquipmentID: "eq-1", Status: domain.RentalStatusActive}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)

		res, err := svc.Reject(ctx, "rt-1", "too late")
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Nil(t, res)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Requester cancels own pending request", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt := &domain.RentalRequest{
			ID:          "rt-1",
			RequesterID: "user-1",
			EquipmentID: "eq-1",
			Status:      domain.RentalStatusPending,
		}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)
		rentalRepo.On("Update", ctx, rt).Return(nil)

		res, err := svc.Cancel(ctx, "user-1", "rt-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCancelled, res.Status)
	})

	t.Run("Only the requester may cancel", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt := &domain.RentalRequest{ID: "rt-1", RequesterID: "user-1", EquipmentID: "eq-1", Status: domain.RentalStatusPending}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)

		res, err := svc.Cancel(ctx, "someone-else", "rt-1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, res)
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Completed request stays completed", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt := &domain.RentalRequest{ID: "rt-1", RequesterID: "user-1", EquipmentID: "eq-1", Status: domain.RentalStatusCompleted}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)

		res, err := svc.Cancel(ctx, "user-1", "rt-1")
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Nil(t, res)
	})
}

func TestBookingService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets return date and frees equipment", func(t *testing.T) {
		rentalRepo, equipRepo, _, noteRepo, _, svc := newBookingFixture()

		end := date(2025, time.June, 15)
		rt := &domain.RentalRequest{
			ID:          "rt-1",
			RequesterID: "user-1",
			EquipmentID: "eq-1",
			StartDate:   date(2025, time.June, 10),
			EndDate:     end,
			Status:      domain.RentalStatusActive,
		}
		eq := &domain.Equipment{
			ID:                "eq-1",
			Make:              "Toyota",
			Model:             "8FGU25",
			Status:            domain.EquipmentStatusRented,
			NextAvailableDate: &end,
		}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)
		equipRepo.On("GetByID", ctx, "eq-1").Return(eq, nil)
		rentalRepo.On("UpdateWithEquipment", ctx, rt, eq).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.Complete(ctx, "rt-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, res.Status)
		assert.NotNil(t, res.ActualReturnDate)
		assert.Equal(t, domain.EquipmentStatusAvailable, eq.Status)
		assert.Nil(t, eq.NextAvailableDate)
	})

	t.Run("Existing return date is preserved", func(t *testing.T) {
		rentalRepo, equipRepo, _, noteRepo, _, svc := newBookingFixture()

		returned := date(2025, time.June, 14)
		rt := &domain.RentalRequest{
			ID:               "rt-1",
			RequesterID:      "user-1",
			EquipmentID:      "eq-1",
			Status:           domain.RentalStatusActive,
			ActualReturnDate: &returned,
		}
		eq := &domain.Equipment{ID: "eq-1", Status: domain.EquipmentStatusRented}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)
		equipRepo.On("GetByID", ctx, "eq-1").Return(eq, nil)
		rentalRepo.On("UpdateWithEquipment", ctx, rt, eq).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.Complete(ctx, "rt-1")
		assert.NoError(t, err)
		assert.Equal(t, &returned, res.ActualReturnDate)
	})

	t.Run("Pending request cannot complete", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newBookingFixture()

		rt := &domain.RentalRequest{ID: "rt-1", EquipmentID: "eq-1", Status: domain.RentalStatusPending}
		rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)

		res, err := svc.Complete(ctx, "rt-1")
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
		assert.Nil(t, res)
		rentalRepo.AssertNotCalled(t, "UpdateWithEquipment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_GetRequest(t *testing.T) {
	ctx := context.Background()

	rentalRepo, _, _, _, _, svc := newBookingFixture()
	rt := &domain.RentalRequest{ID: "rt-1", RequesterID: "user-1", EquipmentID: "eq-1", Status: domain.RentalStatusPending}
	rentalRepo.On("GetByID", ctx, "rt-1").Return(rt, nil)

	t.Run("Requester sees own request", func(t *testing.T) {
		res, err := svc.GetRequest(ctx, "user-1", false, "rt-1")
		assert.NoError(t, err)
		assert.Equal(t, rt, res)
	})

	t.Run("Staff sees any request", func(t *testing.T) {
		res, err := svc.GetRequest(ctx, "staff-1", true, "rt-1")
		assert.NoError(t, err)
		assert.Equal(t, rt, res)
	})

	t.Run("Other customers are denied", func(t *testing.T) {
		res, err := svc.GetRequest(ctx, "user-2", false, "rt-1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, res)
	})
}

// bookingState backs the fake repositories below with one shared,
// mutex-guarded record set so concurrent calls observe each other's
// committed writes.
type bookingState struct {
	mu        sync.Mutex
	requests  map[string]*domain.RentalRequest
	equipment map[string]*domain.Equipment
}

type stateRentalRepo struct {
	state *bookingState
}

func (r *stateRentalRepo) Create(ctx context.Context, rt *domain.RentalRequest) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	cp := *rt
	r.state.requests[rt.ID] = &cp
	return nil
}

func (r *stateRentalRepo) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	rt, ok := r.state.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rt
	return &cp, nil
}

func (r *stateRentalRepo) Update(ctx context.Context, rt *domain.RentalRequest) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	cp := *rt
	r.state.requests[rt.ID] = &cp
	return nil
}

func (r *stateRentalRepo) ListByEquipment(ctx context.Context, equipmentID string, statuses []domain.RentalStatus) ([]domain.RentalRequest, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	var out []domain.RentalRequest
	for _, rt := range r.state.requests {
		if rt.EquipmentID != equipmentID {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if rt.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *rt)
	}
	return out, nil
}

func (r *stateRentalRepo) ListByRequester(ctx context.Context, requesterID string) ([]domain.RentalRequest, error) {
	return nil, nil
}

func (r *stateRentalRepo) ListAll(ctx context.Context) ([]domain.RentalRequest, error) {
	return nil, nil
}

func (r *stateRentalRepo) ActivateWithCascade(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment, rejectIDs []string, reason string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	stored, ok := r.state.requests[rt.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != domain.RentalStatusPending {
		return domain.ErrInvalidStateTransition
	}
	rtCp := *rt
	r.state.requests[rt.ID] = &rtCp
	eqCp := *eq
	r.state.equipment[eq.ID] = &eqCp
	for _, id := range rejectIDs {
		if victim, ok := r.state.requests[id]; ok {
			victim.Status = domain.RentalStatusRejected
			victim.RejectionReason = reason
		}
	}
	return nil
}

func (r *stateRentalRepo) UpdateWithEquipment(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	rtCp := *rt
	r.state.requests[rt.ID] = &rtCp
	eqCp := *eq
	r.state.equipment[eq.ID] = &eqCp
	return nil
}

type stateEquipmentRepo struct {
	state *bookingState
}

func (r *stateEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error { return nil }

func (r *stateEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	eq, ok := r.state.equipment[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *eq
	return &cp, nil
}

func (r *stateEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error { return nil }
func (r *stateEquipmentRepo) Delete(ctx context.Context, id string) error            { return nil }
func (r *stateEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error)   { return nil, nil }

func TestBookingService_ConcurrentApproval(t *testing.T) {
	ctx := context.Background()

	state := &bookingState{
		requests: map[string]*domain.RentalRequest{
			"rt-1": {
				ID: "rt-1", RequesterID: "user-1", EquipmentID: "eq-1",
				StartDate: date(2025, time.June, 10), EndDate: date(2025, time.June, 14),
				Status: domain.RentalStatusPending,
			},
			"rt-2": {
				ID: "rt-2", RequesterID: "user-2", EquipmentID: "eq-1",
				StartDate: date(2025, time.June, 12), EndDate: date(2025, time.June, 18),
				Status: domain.RentalStatusPending,
			},
		},
		equipment: map[string]*domain.Equipment{
			"eq-1": {
				ID: "eq-1", Make: "Toyota", Model: "8FGU25",
				DailyRateCents: 15000, Status: domain.EquipmentStatusAvailable,
			},
		},
	}

	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	userRepo.On("GetByID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: "user-1", Email: "u@test.com", FirstName: "Uma"}, nil)
	noteRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)
	emailSvc.On("SendRentalApprovalNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewBookingService(&stateRentalRepo{state}, &stateEquipmentRepo{state}, userRepo, noteRepo, emailSvc)

	var wg sync.WaitGroup
	var resMu sync.Mutex
	results := map[string]error{}
	for _, id := range []string{"rt-1", "rt-2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Approve(ctx, id)
			resMu.Lock()
			results[id] = err
			resMu.Unlock()
		}(id)
	}
	wg.Wait()

	// Exactly one approval lands; whichever request entered the critical
	// section second finds itself cascade-rejected on its re-read.
	winner, loser := "rt-1", "rt-2"
	if results["rt-1"] != nil {
		winner, loser = "rt-2", "rt-1"
	}
	assert.NoError(t, results[winner])
	assert.ErrorIs(t, results[loser], domain.ErrInvalidStateTransition)

	state.mu.Lock()
	defer state.mu.Unlock()
	assert.Equal(t, domain.RentalStatusActive, state.requests[winner].Status)
	assert.Equal(t, domain.RentalStatusRejected, state.requests[loser].Status)
	assert.Equal(t, domain.RejectionReasonConflict, state.requests[loser].RejectionReason)
	assert.Equal(t, domain.EquipmentStatusRented, state.equipment["eq-1"].Status)
	if assert.NotNil(t, state.equipment["eq-1"].NextAvailableDate) {
		assert.Equal(t, state.requests[winner].EndDate, *state.equipment["eq-1"].NextAvailableDate)
	}
}
