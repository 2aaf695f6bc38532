package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a sellable catalog item. UnitPrice is the authoritative
// price source for bill lines; Stock is informational and never decremented
// by a sale.
type Item struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
