package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, requester_id, equipment_id, start_date, end_date, actual_return_date, total_cost_cents, status, rejection_reason, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }, rt *domain.RentalRequest) error {
	return row.Scan(&rt.ID, &rt.RequesterID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate, &rt.ActualReturnDate, &rt.TotalCostCents, &rt.Status, &rt.RejectionReason, &rt.CreatedOn, &rt.UpdatedOn)
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.RentalRequest) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	now := time.Now()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	query := `INSERT INTO rental_requests (id, requester_id, equipment_id, start_date, end_date, total_cost_cents, status, rejection_reason, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.RequesterID, rt.EquipmentID, rt.StartDate, rt.EndDate, rt.TotalCostCents, rt.Status, rt.RejectionReason, rt.CreatedOn, rt.UpdatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	rt := &domain.RentalRequest{}
	query := `SELECT ` + rentalColumns + ` FROM rental_requests WHERE id = $1`
	err := scanRental(r.db.QueryRowContext(ctx, query, id), rt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.RentalRequest) error {
	rt.UpdatedOn = time.Now()
	query := `UPDATE rental_requests SET status=$1, rejection_reason=$2, actual_return_date=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.RejectionReason, rt.ActualReturnDate, rt.UpdatedOn, rt.ID)
	return err
}

func (r *rentalRepository) ListByEquipment(ctx context.Context, equipmentID string, statuses []domain.RentalStatus) ([]domain.RentalRequest, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_requests WHERE equipment_id = $1`
	args := []interface{}{equipmentID}
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, st := range statuses {
			placeholders[i] = fmt.Sprintf("$%d", i+2)
			args = append(args, st)
		}
		query += " AND status IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY start_date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRequest
	for rows.Next() {
		var rt domain.RentalRequest
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByRequester(ctx context.Context, requesterID string) ([]domain.RentalRequest, error) {
	query := `SELECT r.id, r.requester_id, r.equipment_id, r.start_date, r.end_date, r.actual_return_date, r.total_cost_cents, r.status, r.rejection_reason, r.created_on, r.updated_on,
	                 e.make, e.model, e.image_url, e.capacity, e.power
	          FROM rental_requests r
	          LEFT JOIN equipment e ON e.id = r.equipment_id
	          WHERE r.requester_id = $1
	          ORDER BY r.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRequest
	for rows.Next() {
		var rt domain.RentalRequest
		var mk, md, img, cp, pw sql.NullString
		if err := rows.Scan(&rt.ID, &rt.RequesterID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate, &rt.ActualReturnDate, &rt.TotalCostCents, &rt.Status, &rt.RejectionReason, &rt.CreatedOn, &rt.UpdatedOn,
			&mk, &md, &img, &cp, &pw); err != nil {
			return nil, err
		}
		if mk.Valid {
			rt.Equipment = &domain.EquipmentSummary{Make: mk.String, Model: md.String, ImageURL: img.String, Capacity: cp.String, Power: pw.String}
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.RentalRequest, error) {
	query := `SELECT r.id, r.requester_id, r.equipment_id, r.start_date, r.end_date, r.actual_return_date, r.total_cost_cents, r.status, r.rejection_reason, r.created_on, r.updated_on,
	                 e.make, e.model, e.image_url, e.capacity, e.power,
	                 u.first_name, u.last_name, u.email, u.phone, u.address
	          FROM rental_requests r
	          LEFT JOIN equipment e ON e.id = r.equipment_id
	          LEFT JOIN users u ON u.id = r.requester_id
	          ORDER BY r.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRequest
	for rows.Next() {
		var rt domain.RentalRequest
		var mk, md, img, cp, pw sql.NullString
		var fn, ln, em, ph, ad sql.NullString
		if err := rows.Scan(&rt.ID, &rt.RequesterID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate, &rt.ActualReturnDate, &rt.TotalCostCents, &rt.Status, &rt.RejectionReason, &rt.CreatedOn, &rt.UpdatedOn,
			&mk, &md, &img, &cp, &pw, &fn, &ln, &em, &ph, &ad); err != nil {
			return nil, err
		}
		if mk.Valid {
			rt.Equipment = &domain.EquipmentSummary{Make: mk.String, Model: md.String, ImageURL: img.String, Capacity: cp.String, Power: pw.String}
		}
		if em.Valid {
			rt.Requester = &domain.UserSummary{FirstName: fn.String, LastName: ln.String, Email: em.String, Phone: ph.String, Address: ad.String}
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

// ActivateWithCascade writes the approval, the equipment flip, and the
// auto-rejections in one transaction so a reader can never see an ACTIVE
// request without its cascade applied. The activation UPDATE is guarded
// on PENDING; a row that left PENDING since the caller's read fails the
// whole transaction instead of resurrecting a terminal state.
func (r *rentalRepository) ActivateWithCascade(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment, rejectIDs []string, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	now := time.Now()

	res, err := tx.ExecContext(ctx,
		`UPDATE rental_requests SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`,
		rt.Status, now, rt.ID, domain.RentalStatusPending)
	if err != nil {
		tx.Rollback()
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		tx.Rollback()
		return domain.ErrInvalidStateTransition
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE equipment SET status=$1, next_available_date=$2, updated_on=$3 WHERE id=$4`,
		eq.Status, eq.NextAvailableDate, now, eq.ID); err != nil {
		tx.Rollback()
		return err
	}
	if len(rejectIDs) > 0 {
		if _, err := tx.ExecContext(ctx,
			`UPDATE rental_requests SET status=$1, rejection_reason=$2, updated_on=$3 WHERE id = ANY($4)`,
			domain.RentalStatusRejected, reason, now, pq.Array(rejectIDs)); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	rt.UpdatedOn = now
	eq.UpdatedOn = now
	return nil
}

func (r *rentalRepository) UpdateWithEquipment(ctx context.Context, rt *domain.RentalRequest, eq *domain.Equipment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	now := time.Now()

	if _, err := tx.ExecContext(ctx,
		`UPDATE rental_requests SET status=$1, rejection_reason=$2, actual_return_date=$3, updated_on=$4 WHERE id=$5`,
		rt.Status, rt.RejectionReason, rt.ActualReturnDate, now, rt.ID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE equipment SET status=$1, next_available_date=$2, updated_on=$3 WHERE id=$4`,
		eq.Status, eq.NextAvailableDate, now, eq.ID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	rt.UpdatedOn = now
	eq.UpdatedOn = now
	return nil
}
