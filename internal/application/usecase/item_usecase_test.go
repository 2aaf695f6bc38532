package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/application/usecase"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
)

type memItemRepo struct {
	nextID int64
	byID   map[int64]*entity.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{byID: make(map[int64]*entity.Item)}
}

func (r *memItemRepo) Create(item *entity.Item) error {
	r.nextID++
	item.ID = r.nextID
	stored := *item
	r.byID[item.ID] = &stored
	return nil
}

func (r *memItemRepo) GetByID(id int64) (*entity.Item, error) { return r.byID[id], nil }

func (r *memItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok {
			out = append(out, item)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	stored := *item
	r.byID[item.ID] = &stored
	return nil
}

func (r *memItemRepo) Delete(id int64) error {
	delete(r.byID, id)
	return nil
}

func validItemRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:      "Rice 5kg",
		UnitPrice: decimal.NewFromFloat(12.50),
		Stock:     40,
	}
}

func TestItemCreate_Valid(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	resp, err := uc.Create(validItemRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Rice 5kg", resp.Name)
	assert.True(t, resp.UnitPrice.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, 40, resp.Stock)
}

func TestItemCreate_EmptyName_Rejected(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	in := validItemRequest()
	in.Name = ""
	_, err := uc.Create(in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Item name can not be empty")
}

func TestItemCreate_NonPositivePrice_Rejected(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	in := validItemRequest()
	in.UnitPrice = decimal.Zero
	_, err := uc.Create(in)
	require.Error(t, err)
	assert.EqualError(t, err, "Item price must be greater than 0")
}

func TestItemCreate_NegativeStock_Rejected(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	in := validItemRequest()
	in.Stock = -1
	_, err := uc.Create(in)
	require.Error(t, err)
	assert.EqualError(t, err, "Item stock can not be negative")
}

func TestItemGetByID_Unknown_NotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.GetByID(9)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemUpdate_PartialFields(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())
	created, err := uc.Create(validItemRequest())
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(13.75)
	resp, err := uc.Update(created.ID, dto.UpdateItemRequest{UnitPrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Rice 5kg", resp.Name, "untouched fields keep their values")
	assert.True(t, resp.UnitPrice.Equal(newPrice))
}

func TestItemUpdate_InvalidResult_Rejected(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())
	created, err := uc.Create(validItemRequest())
	require.NoError(t, err)

	bad := decimal.NewFromInt(-5)
	_, err = uc.Update(created.ID, dto.UpdateItemRequest{UnitPrice: &bad})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestItemDelete_ThenGone(t *testing.T) {
	repo := newMemItemRepo()
	uc := usecase.NewItemUseCase(repo)
	created, err := uc.Create(validItemRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.True(t, domain.IsNotFound(err))

	err = uc.Delete(created.ID)
	assert.True(t, domain.IsNotFound(err), "deleting twice must report NotFound")
}

func TestItemList_Paginates(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())
	for i := 0; i < 5; i++ {
		in := validItemRequest()
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	page, err := uc.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].ID)
}
