package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implements BillRepository (usable with pool or tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository builds the adapter. Pass a pool or a tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create inserts the bill header and assigns the generated id. Fails with
// a persistence error when no id comes back.
func (r *BillRepo) Create(bill *entity.Bill) error {
	query := `
		INSERT INTO bills (customer_id, user_id, bill_date, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		bill.CustomerID, bill.UserID, bill.BillDate, bill.Total,
	).Scan(&bill.ID)
	if err != nil {
		return domain.Persistence(fmt.Sprintf("insert bill for customer %d", bill.CustomerID), err)
	}
	if bill.ID == 0 {
		return domain.Persistence("insert bill", errors.New("no generated id returned"))
	}
	return nil
}

// FindAll returns all bill headers, newest first.
func (r *BillRepo) FindAll() ([]*entity.Bill, error) {
	query := `
		SELECT id, customer_id, user_id, bill_date, total
		FROM bills ORDER BY bill_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, domain.Persistence("list bills", err)
	}
	defer rows.Close()
	var bills []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.UserID, &b.BillDate, &b.Total); err != nil {
			return nil, domain.Persistence("scan bill", err)
		}
		bills = append(bills, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list bills", err)
	}
	return bills, nil
}

// FindByID returns one bill header or (nil, nil) when absent.
func (r *BillRepo) FindByID(id int64) (*entity.Bill, error) {
	query := `
		SELECT id, customer_id, user_id, bill_date, total
		FROM bills WHERE id = $1`
	var b entity.Bill
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CustomerID, &b.UserID, &b.BillDate, &b.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence(fmt.Sprintf("get bill %d", id), err)
	}
	return &b, nil
}
