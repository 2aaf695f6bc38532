package entity

import "github.com/shopspring/decimal"

// BillItem is one line of a bill. Subtotal is quantity times the catalog
// unit price resolved at creation time and is immutable thereafter.
type BillItem struct {
	ID       int64
	BillID   int64
	ItemID   int64
	Quantity int
	Subtotal decimal.Decimal
}
