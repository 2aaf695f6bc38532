package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwelikannage/pos-api/internal/application/billing"
	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomers struct{ byID map[int64]*entity.Customer }

func (f *fakeCustomers) GetByID(id int64) (*entity.Customer, error) { return f.byID[id], nil }

type fakeUsers struct{ byID map[int64]*entity.User }

func (f *fakeUsers) GetByID(id int64) (*entity.User, error) { return f.byID[id], nil }

type fakeItems struct{ byID map[int64]*entity.Item }

func (f *fakeItems) GetByID(id int64) (*entity.Item, error) { return f.byID[id], nil }

// fakeBillStore implements both bill repositories over maps, with an
// optional injected failure on the line batch.
type fakeBillStore struct {
	nextBillID int64
	nextLineID int64
	bills      map[int64]*entity.Bill
	lines      map[int64][]*entity.BillItem
	failLines  bool
}

func newFakeBillStore() *fakeBillStore {
	return &fakeBillStore{
		bills: make(map[int64]*entity.Bill),
		lines: make(map[int64][]*entity.BillItem),
	}
}

func (s *fakeBillStore) Create(bill *entity.Bill) error {
	s.nextBillID++
	bill.ID = s.nextBillID
	stored := *bill
	s.bills[bill.ID] = &stored
	return nil
}

func (s *fakeBillStore) FindAll() ([]*entity.Bill, error) {
	out := make([]*entity.Bill, 0, len(s.bills))
	for _, b := range s.bills {
		out = append(out, b)
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].BillDate.After(out[i].BillDate) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (s *fakeBillStore) FindByID(id int64) (*entity.Bill, error) { return s.bills[id], nil }

func (s *fakeBillStore) SaveItems(billID int64, items []*entity.BillItem) error {
	if s.failLines {
		return domain.Persistence("insert bill items", errors.New("connection reset"))
	}
	for _, item := range items {
		s.nextLineID++
		stored := *item
		stored.ID = s.nextLineID
		stored.BillID = billID
		s.lines[billID] = append(s.lines[billID], &stored)
	}
	return nil
}

func (s *fakeBillStore) FindByBillID(billID int64) ([]*entity.BillItem, error) {
	return s.lines[billID], nil
}

// fakeTxRunner snapshots the store before fn and restores it when fn
// fails, mimicking a database rollback.
type fakeTxRunner struct{ store *fakeBillStore }

func (r *fakeTxRunner) RunBill(ctx context.Context, fn func(
	billRepo repository.BillRepository,
	billItemRepo repository.BillItemRepository,
) error) error {
	snapshot := *r.store
	snapshot.bills = make(map[int64]*entity.Bill, len(r.store.bills))
	for k, v := range r.store.bills {
		snapshot.bills[k] = v
	}
	snapshot.lines = make(map[int64][]*entity.BillItem, len(r.store.lines))
	for k, v := range r.store.lines {
		snapshot.lines[k] = v
	}
	if err := fn(r.store, r.store); err != nil {
		*r.store = snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc    *billing.BillUseCase
	store *fakeBillStore
	items *fakeItems
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	customers := &fakeCustomers{byID: map[int64]*entity.Customer{
		1: {ID: 1, FirstName: "Jane", LastName: "Doe", Address: "12 Main St", Phone: "+94771234567"},
	}}
	users := &fakeUsers{byID: map[int64]*entity.User{
		1: {ID: 1, FirstName: "Sam", LastName: "Perera", Username: "sam", Role: entity.RoleCashier},
	}}
	items := &fakeItems{byID: map[int64]*entity.Item{
		1: {ID: 1, Name: "Item One", UnitPrice: decimal.NewFromFloat(10.0), Stock: 100},
		2: {ID: 2, Name: "Item Two", UnitPrice: decimal.NewFromFloat(20.0), Stock: 50},
	}}
	store := newFakeBillStore()
	uc := billing.NewBillUseCase(&fakeTxRunner{store: store}, customers, users, items, store, store)
	return &fixture{uc: uc, store: store, items: items}
}

func twoLineRequest() dto.CreateBillRequest {
	return dto.CreateBillRequest{
		CustomerID: 1,
		Items: []dto.BillItemRequest{
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 3},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateBill
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBill_ComputesTotalsFromCatalogPrices(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), 1, twoLineRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(80)),
		"total must be 2*10 + 3*20 = 80, got %s", resp.Total)
	require.Len(t, resp.Lines, 2)

	// lines come back in input order with generated ids
	assert.Equal(t, int64(1), resp.Lines[0].ItemID)
	assert.Equal(t, "Item One", resp.Lines[0].ItemName)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.True(t, resp.Lines[0].Subtotal.Equal(decimal.NewFromInt(20)))
	assert.NotZero(t, resp.Lines[0].LineID)

	assert.Equal(t, int64(2), resp.Lines[1].ItemID)
	assert.True(t, resp.Lines[1].Subtotal.Equal(decimal.NewFromInt(60)))

	// total equals the sum of returned line subtotals
	sum := decimal.Zero
	for _, line := range resp.Lines {
		sum = sum.Add(line.Subtotal)
	}
	assert.True(t, resp.Total.Equal(sum))

	// denormalized display fields
	assert.Equal(t, "Jane", resp.Customer.FirstName)
	assert.Equal(t, "sam", resp.User.Username)
}

func TestCreateBill_EmptyLines_NothingPersisted(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateBill(context.Background(), 1, dto.CreateBillRequest{CustomerID: 1})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Bill must contain at least one item.")
	assert.Empty(t, f.store.bills, "no header may be persisted on validation failure")
}

func TestCreateBill_ZeroQuantity_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateBill(context.Background(), 1, dto.CreateBillRequest{
		CustomerID: 1,
		Items:      []dto.BillItemRequest{{ItemID: 1, Quantity: 0}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Quantity must be > 0 for item 1")
	assert.Empty(t, f.store.bills)
}

func TestCreateBill_QuantityOne_IsValid(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), 1, dto.CreateBillRequest{
		CustomerID: 1,
		Items:      []dto.BillItemRequest{{ItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(10)))
}

func TestCreateBill_UnknownItem_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateBill(context.Background(), 1, dto.CreateBillRequest{
		CustomerID: 1,
		Items:      []dto.BillItemRequest{{ItemID: 99, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "item 99")
	assert.Empty(t, f.store.bills)
}

func TestCreateBill_UnknownCustomer_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateBill(context.Background(), 1, dto.CreateBillRequest{
		CustomerID: 42,
		Items:      []dto.BillItemRequest{{ItemID: 1, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "customer 42")
}

func TestCreateBill_UnknownUser_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateBill(context.Background(), 7, twoLineRequest())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "user 7")
}

func TestCreateBill_LineBatchFailure_RollsBackHeader(t *testing.T) {
	f := newFixture(t)
	f.store.failLines = true

	_, err := f.uc.CreateBill(context.Background(), 1, twoLineRequest())
	require.Error(t, err)

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)

	// full rollback: no header observable through the read paths
	bills, err := f.uc.GetAllBills(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bills, "a failed line batch must not leave an orphaned header")

	_, err = f.uc.GetBill(context.Background(), 1)
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateBill_SubtotalFrozenAtCreationTime(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), 1, dto.CreateBillRequest{
		CustomerID: 1,
		Items:      []dto.BillItemRequest{{ItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	require.True(t, resp.Total.Equal(decimal.NewFromInt(20)))

	// a later catalog price change must not touch the persisted subtotal
	f.items.byID[1].UnitPrice = decimal.NewFromInt(99)

	reread, err := f.uc.GetBill(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, reread.Total.Equal(decimal.NewFromInt(20)))
	assert.True(t, reread.Lines[0].Subtotal.Equal(decimal.NewFromInt(20)))
	// the display unit price reflects the current catalog, the money does not
	assert.True(t, reread.Lines[0].UnitPrice.Equal(decimal.NewFromInt(99)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reads
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBill_ReadIsIdempotent(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreateBill(context.Background(), 1, twoLineRequest())
	require.NoError(t, err)

	first, err := f.uc.GetBill(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := f.uc.GetBill(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "two reads without writes must return identical data")
	assert.True(t, first.Total.Equal(decimal.NewFromInt(80)))
	require.Len(t, first.Lines, 2)
}

func TestGetBill_Unknown_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetBill(context.Background(), 123)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "bill 123")
}

func TestGetAllBills_NewestFirst(t *testing.T) {
	f := newFixture(t)

	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	require.NoError(t, f.store.Create(&entity.Bill{CustomerID: 1, UserID: 1, BillDate: t1, Total: decimal.NewFromInt(10)}))
	require.NoError(t, f.store.Create(&entity.Bill{CustomerID: 1, UserID: 1, BillDate: t2, Total: decimal.NewFromInt(20)}))

	bills, err := f.uc.GetAllBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, t2, bills[0].CreatedAt, "the later bill comes first")
	assert.Equal(t, t1, bills[1].CreatedAt)
	assert.Empty(t, bills[0].Lines, "header listing carries no lines")
}

func TestGetBillItems_ReturnsOnlyLines(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreateBill(context.Background(), 1, twoLineRequest())
	require.NoError(t, err)

	lines, err := f.uc.GetBillItems(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Item One", lines[0].ItemName)
	assert.Equal(t, "Item Two", lines[1].ItemName)
}

func TestGetBillItems_UnknownBill_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetBillItems(context.Background(), 55)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
