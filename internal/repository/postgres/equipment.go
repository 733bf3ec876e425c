package postgres

import (
	"context"
	"database/sql"
	"time"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, make, model, capacity, power, torque, fuel, image_url, daily_rate_cents, status, next_available_date, created_on, updated_on`

func scanEquipment(row interface{ Scan(...any) error }, eq *domain.Equipment) error {
	return row.Scan(&eq.ID, &eq.Make, &eq.Model, &eq.Capacity, &eq.Power, &eq.Torque, &eq.Fuel, &eq.ImageURL, &eq.DailyRateCents, &eq.Status, &eq.NextAvailableDate, &eq.CreatedOn, &eq.UpdatedOn)
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	if eq.ID == "" {
		eq.ID = uuid.NewString()
	}
	if eq.Status == "" {
		eq.Status = domain.EquipmentStatusAvailable
	}
	now := time.Now()
	eq.CreatedOn = now
	eq.UpdatedOn = now
	query := `INSERT INTO equipment (id, make, model, capacity, power, torque, fuel, image_url, daily_rate_cents, status, next_available_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query, eq.ID, eq.Make, eq.Model, eq.Capacity, eq.Power, eq.Torque, eq.Fuel, eq.ImageURL, eq.DailyRateCents, eq.Status, eq.NextAvailableDate, eq.CreatedOn, eq.UpdatedOn)
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	err := scanEquipment(r.db.QueryRowContext(ctx, query, id), eq)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	eq.UpdatedOn = time.Now()
	query := `UPDATE equipment SET make=$1, model=$2, capacity=$3, power=$4, torque=$5, fuel=$6, image_url=$7, daily_rate_cents=$8, status=$9, next_available_date=$10, updated_on=$11 WHERE id=$12`
	res, err := r.db.ExecContext(ctx, query, eq.Make, eq.Model, eq.Capacity, eq.Power, eq.Torque, eq.Fuel, eq.ImageURL, eq.DailyRateCents, eq.Status, eq.NextAvailableDate, eq.UpdatedOn, eq.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY make, model`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fleet []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := scanEquipment(rows, &eq); err != nil {
			return nil, err
		}
		fleet = append(fleet, eq)
	}
	return fleet, rows.Err()
}
