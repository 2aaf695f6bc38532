package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

// ItemUseCase CRUD operations for catalog items. Stock here is
// informational: bill creation reads prices but never decrements stock.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create validates and persists a new item.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := validateItem(in.Name, in.UnitPrice, in.Stock); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID returns one item or NotFound.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("item", id)
	}
	return toItemResponse(item), nil
}

// List returns a page of items.
func (uc *ItemUseCase) List(limit, offset int) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// Update applies the non-nil fields and persists the item.
func (uc *ItemUseCase) Update(id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("item", id)
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if err := validateItem(item.Name, item.UnitPrice, item.Stock); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete removes an item or fails with NotFound.
func (uc *ItemUseCase) Delete(id int64) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.NotFound("item", id)
	}
	return uc.repo.Delete(id)
}

func validateItem(name string, unitPrice decimal.Decimal, stock int) error {
	if name == "" {
		return domain.Validationf("Item name can not be empty")
	}
	if !unitPrice.GreaterThan(decimal.Zero) {
		return domain.Validationf("Item price must be greater than 0")
	}
	if stock < 0 {
		return domain.Validationf("Item stock can not be negative")
	}
	return nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Stock:     i.Stock,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
