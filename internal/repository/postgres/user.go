package postgres

import (
	"context"
	"database/sql"
	"time"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, phone, address, password_hash, role, created_on, updated_on`

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	return row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.Role, &u.CreatedOn, &u.UpdatedOn)
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedOn = now
	u.UpdatedOn = now
	query := `INSERT INTO users (id, first_name, last_name, email, phone, address, password_hash, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address, u.PasswordHash, u.Role, u.CreatedOn, u.UpdatedOn)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := scanUser(r.db.QueryRowContext(ctx, query, id), u)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	err := scanUser(r.db.QueryRowContext(ctx, query, email), u)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	u.UpdatedOn = time.Now()
	query := `UPDATE users SET first_name=$1, last_name=$2, email=$3, phone=$4, address=$5, password_hash=$6, role=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, u.FirstName, u.LastName, u.Email, u.Phone, u.Address, u.PasswordHash, u.Role, u.UpdatedOn, u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.listWhere(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_on`)
}

func (r *userRepository) ListPrivileged(ctx context.Context) ([]domain.User, error) {
	return r.listWhere(ctx, `SELECT `+userColumns+` FROM users WHERE role IN ('staff', 'admin', 'owner') ORDER BY created_on`)
}

func (r *userRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
