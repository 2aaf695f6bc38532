package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

var _ repository.BillItemRepository = (*BillItemRepo)(nil)

// BillItemRepo implements BillItemRepository (usable with pool or tx).
type BillItemRepo struct {
	q Querier
}

// NewBillItemRepository builds the adapter. Pass a pool or a tx (Querier).
func NewBillItemRepository(q Querier) *BillItemRepo {
	return &BillItemRepo{q: q}
}

// SaveItems inserts all lines for billID as one pgx batch. Run inside a
// transaction: a failed row fails the whole batch and the caller rolls
// back, so partial batches never survive.
func (r *BillItemRepo) SaveItems(billID int64, items []*entity.BillItem) error {
	query := `
		INSERT INTO bill_items (bill_id, item_id, quantity, price)
		VALUES ($1, $2, $3, $4)`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, billID, item.ItemID, item.Quantity, item.Subtotal)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return domain.Persistence(fmt.Sprintf("insert bill items for bill %d", billID), err)
		}
	}
	return nil
}

// FindByBillID returns the lines of a bill in insertion order.
func (r *BillItemRepo) FindByBillID(billID int64) ([]*entity.BillItem, error) {
	query := `
		SELECT id, bill_id, item_id, quantity, price
		FROM bill_items WHERE bill_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, domain.Persistence(fmt.Sprintf("list bill items for bill %d", billID), err)
	}
	defer rows.Close()
	var items []*entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.ItemID, &it.Quantity, &it.Subtotal); err != nil {
			return nil, domain.Persistence("scan bill item", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence(fmt.Sprintf("list bill items for bill %d", billID), err)
	}
	return items, nil
}
