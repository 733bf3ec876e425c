package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) KPIs(ctx context.Context) (*domain.AnalyticsKPIs, error) {
	k := &domain.AnalyticsKPIs{}
	query := `SELECT count(*),
	                 count(*) FILTER (WHERE status = 'ACTIVE'),
	                 COALESCE(SUM(total_cost_cents) FILTER (WHERE status IN ('ACTIVE', 'COMPLETED')), 0)
	          FROM rental_requests`
	if err := r.db.QueryRowContext(ctx, query).Scan(&k.TotalRentals, &k.ActiveRentals, &k.TotalRevenueCents); err != nil {
		return nil, err
	}
	return k, nil
}

func (r *analyticsRepository) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	query := `SELECT EXTRACT(YEAR FROM created_on)::int, EXTRACT(MONTH FROM created_on)::int,
	                 count(*), COALESCE(SUM(total_cost_cents), 0)
	          FROM rental_requests
	          GROUP BY 1, 2
	          ORDER BY 1, 2`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []domain.MonthlyTrend
	for rows.Next() {
		var year, month int
		var t domain.MonthlyTrend
		if err := rows.Scan(&year, &month, &t.Rentals, &t.IncomeCents); err != nil {
			return nil, err
		}
		t.Name = fmt.Sprintf("%s %d", time.Month(month).String()[:3], year)
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

func (r *analyticsRepository) TopEquipment(ctx context.Context, limit int32) ([]domain.EquipmentUsage, error) {
	// Deleted units still count toward history; their name degrades to a
	// placeholder like the original dashboard showed.
	query := `SELECT COALESCE(e.make || ' ' || e.model, 'Deleted Vehicle'), count(*)
	          FROM rental_requests r
	          LEFT JOIN equipment e ON e.id = r.equipment_id
	          WHERE r.status <> 'REJECTED'
	          GROUP BY e.id, e.make, e.model
	          ORDER BY count(*) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []domain.EquipmentUsage
	for rows.Next() {
		var u domain.EquipmentUsage
		if err := rows.Scan(&u.Name, &u.Rentals); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *analyticsRepository) TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerActivity, error) {
	query := `SELECT COALESCE(u.first_name || ' ' || u.last_name, 'Unknown'), COALESCE(u.email, ''),
	                 count(*), COALESCE(SUM(r.total_cost_cents), 0)
	          FROM rental_requests r
	          LEFT JOIN users u ON u.id = r.requester_id
	          WHERE r.status <> 'REJECTED'
	          GROUP BY u.id, u.first_name, u.last_name, u.email
	          ORDER BY count(*) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.CustomerActivity
	for rows.Next() {
		var c domain.CustomerActivity
		if err := rows.Scan(&c.Name, &c.Email, &c.Rentals, &c.TotalSpentCents); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
