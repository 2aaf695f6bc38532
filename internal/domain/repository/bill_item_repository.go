package repository

import "github.com/hwelikannage/pos-api/internal/domain/entity"

// BillItemRepository defines the persistence port for bill lines.
// SaveItems inserts all lines for one bill as a single batch; partial
// batches never survive because the caller runs it inside a transaction.
type BillItemRepository interface {
	SaveItems(billID int64, items []*entity.BillItem) error
	FindByBillID(billID int64) ([]*entity.BillItem, error)
}
