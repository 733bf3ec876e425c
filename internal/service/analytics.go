package service

import (
	"context"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"
)

// topN caps the utilization and top-customer charts, matching the
// dashboard's five-slot layout.
const topN = 5

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	kpis, err := s.analyticsRepo.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	trends, err := s.analyticsRepo.MonthlyTrends(ctx)
	if err != nil {
		return nil, err
	}
	utilization, err := s.analyticsRepo.TopEquipment(ctx, topN)
	if err != nil {
		return nil, err
	}
	customers, err := s.analyticsRepo.TopCustomers(ctx, topN)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsSummary{
		KPIs:         *kpis,
		Trends:       trends,
		Utilization:  utilization,
		TopCustomers: customers,
	}, nil
}
