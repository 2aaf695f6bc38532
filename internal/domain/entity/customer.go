package entity

import "time"

// Customer represents a billing customer. Phone is unique and stored in
// E.164 international format.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
