package repository

import "github.com/hwelikannage/pos-api/internal/domain/entity"

// CustomerRepository defines the persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
}
