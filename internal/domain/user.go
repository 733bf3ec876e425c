package domain

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleStaff UserRole = "staff"
	UserRoleAdmin UserRole = "admin"
	UserRoleOwner UserRole = "owner"
)

// Privileged reports whether the role may approve, reject and complete
// rentals, manage the fleet, and view analytics.
func (r UserRole) Privileged() bool {
	return r == UserRoleStaff || r == UserRoleAdmin || r == UserRoleOwner
}

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// UserSummary is the denormalized slice of requester fields carried on
// rental listings for display.
type UserSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}
