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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository (usable with pool or tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the adapter. Pass a pool or a tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create inserts a new item and assigns the generated id.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (name, unit_price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Name, item.UnitPrice, item.Stock, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return domain.Persistence("insert item", err)
	}
	return nil
}

// GetByID returns one item or (nil, nil) when absent.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT id, name, unit_price, stock, created_at, updated_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.UnitPrice, &it.Stock, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence(fmt.Sprintf("get item %d", id), err)
	}
	return &it, nil
}

// List returns a page of items ordered by id.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT id, name, unit_price, stock, created_at, updated_at
		FROM items ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, domain.Persistence("list items", err)
	}
	defer rows.Close()
	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.Stock, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, domain.Persistence("scan item", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list items", err)
	}
	return items, nil
}

// Update persists all mutable item fields.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, unit_price = $3, stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.UnitPrice, item.Stock, item.UpdatedAt,
	)
	if err != nil {
		return domain.Persistence(fmt.Sprintf("update item %d", item.ID), err)
	}
	return nil
}

// Delete removes an item by id.
func (r *ItemRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return domain.Persistence(fmt.Sprintf("delete item %d", id), err)
	}
	return nil
}
