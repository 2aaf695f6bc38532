package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hwelikannage/pos-api/internal/application/billing"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBill begins a transaction, runs fn with bill repositories bound to
// that transaction and commits, or rolls back when fn or the commit fail.
// The deferred rollback is a no-op after a successful commit, so the
// transaction is released on every exit path.
func (r *TxRunner) RunBill(ctx context.Context, fn func(
	billRepo repository.BillRepository,
	billItemRepo repository.BillItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	billRepo := NewBillRepository(tx)
	billItemRepo := NewBillItemRepository(tx)

	if err := fn(billRepo, billItemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
