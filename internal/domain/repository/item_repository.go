package repository

import "github.com/hwelikannage/pos-api/internal/domain/entity"

// ItemRepository defines the persistence port for catalog items.
// GetByID returns (nil, nil) when the item does not exist.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id int64) error
}
