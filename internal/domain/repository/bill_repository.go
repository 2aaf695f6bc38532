package repository

import "github.com/hwelikannage/pos-api/internal/domain/entity"

// BillRepository defines the persistence port for bill headers.
// Create assigns the generated id to bill.ID and fails with a persistence
// error when the insert yields no id. FindAll returns headers newest first.
type BillRepository interface {
	Create(bill *entity.Bill) error
	FindAll() ([]*entity.Bill, error)
	FindByID(id int64) (*entity.Bill, error)
}
