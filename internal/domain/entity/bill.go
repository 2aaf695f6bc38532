package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a persisted invoice header. Total always equals the sum
// of the subtotals of its lines. Bills are append-only: once created there
// is no update, void or cancel path.
type Bill struct {
	ID         int64
	CustomerID int64
	UserID     int64
	BillDate   time.Time
	Total      decimal.Decimal
}
