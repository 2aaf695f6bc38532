package billing

import (
	"github.com/shopspring/decimal"

	"github.com/hwelikannage/pos-api/internal/domain"
)

// PriceResolver returns the current authoritative unit price of a catalog
// item. It is the single point through which a bill line price is ever
// obtained; no code path substitutes a client-supplied price.
type PriceResolver struct {
	items ItemLookup
}

// NewPriceResolver builds the resolver over the item lookup.
func NewPriceResolver(items ItemLookup) *PriceResolver {
	return &PriceResolver{items: items}
}

// PriceOf resolves the unit price for itemID, failing with NotFound when
// the item does not exist.
func (r *PriceResolver) PriceOf(itemID int64) (decimal.Decimal, error) {
	item, err := r.items.GetByID(itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if item == nil {
		return decimal.Zero, domain.NotFound("item", itemID)
	}
	return item.UnitPrice, nil
}
