package billing

import (
	"context"

	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

// Lookup ports consumed by the bill workflow. They are the read-only slice
// of the entity repositories: bill creation never mutates customers, users
// or items. All return (nil, nil) when the id does not exist.

// CustomerLookup resolves customers by id.
type CustomerLookup interface {
	GetByID(id int64) (*entity.Customer, error)
}

// UserLookup resolves staff users by id.
type UserLookup interface {
	GetByID(id int64) (*entity.User, error)
}

// ItemLookup resolves catalog items by id.
type ItemLookup interface {
	GetByID(id int64) (*entity.Item, error)
}

// TxRunner runs fn inside one database transaction with bill repositories
// bound to that transaction. The header insert, the line batch and the
// line reload of a single bill creation all go through fn: commit only
// when fn returns nil, full rollback otherwise.
type TxRunner interface {
	RunBill(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		billItemRepo repository.BillItemRepository,
	) error) error
}
