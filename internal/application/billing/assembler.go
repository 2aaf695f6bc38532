package billing

import (
	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
)

// Assembler maps persisted bills and lines into the denormalized
// client-facing projection, joining display fields pulled from the
// customer, user and item records.
type Assembler struct {
	customers CustomerLookup
	users     UserLookup
	items     ItemLookup
}

// NewAssembler builds the assembler over the entity lookups.
func NewAssembler(customers CustomerLookup, users UserLookup, items ItemLookup) *Assembler {
	return &Assembler{customers: customers, users: users, items: items}
}

// Header maps a bill header, resolving customer and user display records.
// Lines are left empty; use Bill for the full aggregate.
func (a *Assembler) Header(bill *entity.Bill) (*dto.BillResponse, error) {
	customer, err := a.customers.GetByID(bill.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("customer", bill.CustomerID)
	}
	user, err := a.users.GetByID(bill.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", bill.UserID)
	}
	return &dto.BillResponse{
		ID:        bill.ID,
		Customer:  toCustomerResponse(customer),
		User:      toUserResponse(user),
		CreatedAt: bill.BillDate,
		Total:     bill.Total,
	}, nil
}

// Bill maps a full aggregate: header plus denormalized lines.
func (a *Assembler) Bill(bill *entity.Bill, lines []*entity.BillItem) (*dto.BillResponse, error) {
	resp, err := a.Header(bill)
	if err != nil {
		return nil, err
	}
	resp.Lines, err = a.Lines(lines)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Lines maps persisted bill lines, resolving each item's display fields.
func (a *Assembler) Lines(lines []*entity.BillItem) ([]dto.BillItemResponse, error) {
	out := make([]dto.BillItemResponse, 0, len(lines))
	for _, line := range lines {
		item, err := a.items.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.NotFound("item", line.ItemID)
		}
		out = append(out, dto.BillItemResponse{
			LineID:    line.ID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
