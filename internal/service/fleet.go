package service

import (
	"context"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"
)

type fleetService struct {
	equipRepo  repository.EquipmentRepository
	rentalRepo repository.RentalRepository
}

func NewFleetService(equipRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) FleetService {
	return &fleetService{equipRepo: equipRepo, rentalRepo: rentalRepo}
}

func (s *fleetService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	eq.Status = domain.EquipmentStatusAvailable
	eq.NextAvailableDate = nil
	return s.equipRepo.Create(ctx, eq)
}

func (s *fleetService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipRepo.GetByID(ctx, id)
}

func (s *fleetService) ListFleet(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipRepo.List(ctx)
}

func (s *fleetService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	current, err := s.equipRepo.GetByID(ctx, eq.ID)
	if err != nil {
		return nil, err
	}

	// Descriptive fields only; the availability pair stays whatever the
	// booking service last set it to.
	current.Make = eq.Make
	current.Model = eq.Model
	current.Capacity = eq.Capacity
	current.Power = eq.Power
	current.Torque = eq.Torque
	current.Fuel = eq.Fuel
	current.ImageURL = eq.ImageURL
	current.DailyRateCents = eq.DailyRateCents

	if err := s.equipRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *fleetService) SetMaintenance(ctx context.Context, id string, underMaintenance bool) (*domain.Equipment, error) {
	eq, err := s.equipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq.Status == domain.EquipmentStatusRented {
		return nil, domain.ErrInvalidStateTransition
	}

	if underMaintenance {
		eq.Status = domain.EquipmentStatusMaintenance
	} else {
		eq.Status = domain.EquipmentStatusAvailable
	}
	if err := s.equipRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *fleetService) DeleteEquipment(ctx context.Context, id string) error {
	eq, err := s.equipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if eq.Status == domain.EquipmentStatusRented {
		return domain.ErrInvalidStateTransition
	}
	return s.equipRepo.Delete(ctx, id)
}
