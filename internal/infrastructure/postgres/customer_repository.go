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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, first_name, last_name, address, phone, created_at, updated_at`

// Create inserts a new customer and assigns the generated id.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.FirstName, customer.LastName, customer.Address, customer.Phone,
		customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validationf("Phone number is already in use")
		}
		return domain.Persistence("insert customer", err)
	}
	return nil
}

// GetByID returns one customer or (nil, nil) when absent.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), fmt.Sprintf("get customer %d", id))
}

// GetByPhone returns the customer holding the phone number, or (nil, nil).
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, phone), "get customer by phone")
}

// List returns a page of customers ordered by id.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, domain.Persistence("list customers", err)
	}
	defer rows.Close()
	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, domain.Persistence("scan customer", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list customers", err)
	}
	return customers, nil
}

// Update persists all mutable customer fields.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, address = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Address,
		customer.Phone, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validationf("Phone number is already in use")
		}
		return domain.Persistence(fmt.Sprintf("update customer %d", customer.ID), err)
	}
	return nil
}

// Delete removes a customer by id.
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return domain.Persistence(fmt.Sprintf("delete customer %d", id), err)
	}
	return nil
}

func (r *CustomerRepo) scanOne(row pgx.Row, op string) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence(op, err)
	}
	return &c, nil
}
