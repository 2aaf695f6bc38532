package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

// User represents a staff member who can log in and create bills.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string // bcrypt hash, never the plain password after persisting
	Role         string // ADMIN, CASHIER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
