package repository

import "github.com/hwelikannage/pos-api/internal/domain/entity"

// UserRepository defines the persistence port for staff users.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
