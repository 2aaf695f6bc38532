package billing

import "github.com/hwelikannage/pos-api/internal/domain"

// ReferenceValidator confirms that a referenced customer, user or item id
// denotes an existing row before it may be used in a bill. No side effects.
type ReferenceValidator struct {
	customers CustomerLookup
	users     UserLookup
	items     ItemLookup
}

// NewReferenceValidator builds the validator over the entity lookups.
func NewReferenceValidator(customers CustomerLookup, users UserLookup, items ItemLookup) *ReferenceValidator {
	return &ReferenceValidator{customers: customers, users: users, items: items}
}

// EnsureCustomerExists fails with NotFound when the customer is absent.
func (v *ReferenceValidator) EnsureCustomerExists(id int64) error {
	customer, err := v.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.NotFound("customer", id)
	}
	return nil
}

// EnsureUserExists fails with NotFound when the user is absent.
func (v *ReferenceValidator) EnsureUserExists(id int64) error {
	user, err := v.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("user", id)
	}
	return nil
}

// EnsureItemExists fails with NotFound when the item is absent.
func (v *ReferenceValidator) EnsureItemExists(id int64) error {
	item, err := v.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.NotFound("item", id)
	}
	return nil
}
