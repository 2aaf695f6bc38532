package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest input for creating a catalog item.
type CreateItemRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Stock     int             `json:"stock"`
}

// UpdateItemRequest input for updating a catalog item. Nil fields are left
// unchanged.
type UpdateItemRequest struct {
	Name      *string          `json:"name"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Stock     *int             `json:"stock"`
}

// ItemResponse output projection of a catalog item.
type ItemResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
