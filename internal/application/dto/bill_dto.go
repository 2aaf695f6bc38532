package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBillRequest is the body of POST /api/bills. The acting user id is
// taken from the authenticated session, never from the body, and unit
// prices are resolved server-side from the item catalog, so they are not
// part of the request schema.
type CreateBillRequest struct {
	CustomerID int64             `json:"customerId"`
	Items      []BillItemRequest `json:"items"`
}

// BillItemRequest is one requested line: an item reference and a quantity.
type BillItemRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// BillItemResponse is a denormalized bill line with the item display
// fields joined in.
type BillItemResponse struct {
	LineID    int64           `json:"lineId"`
	ItemID    int64           `json:"itemId"`
	ItemName  string          `json:"itemName"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// BillResponse is the denormalized projection of a bill: header fields
// plus resolved customer, user and line display data. Lines is omitted in
// header-only listings.
type BillResponse struct {
	ID        int64              `json:"id"`
	Customer  CustomerResponse   `json:"customer"`
	User      UserResponse       `json:"user"`
	CreatedAt time.Time          `json:"createdAt"`
	Total     decimal.Decimal    `json:"total"`
	Lines     []BillItemResponse `json:"lines,omitempty"`
}
