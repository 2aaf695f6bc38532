package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

// BillUseCase orchestrates bill creation: cross-validates the referenced
// customer, user and items, resolves authoritative prices, computes the
// total, persists header and lines in one transaction and assembles the
// denormalized response. All collaborators are injected, so tests can
// substitute fakes.
type BillUseCase struct {
	txRunner     TxRunner
	refs         *ReferenceValidator
	prices       *PriceResolver
	asm          *Assembler
	billRepo     repository.BillRepository
	billItemRepo repository.BillItemRepository
}

// NewBillUseCase builds the use case. billRepo and billItemRepo are the
// pool-bound repositories used for reads; writes go through tx-bound
// repositories handed out by txRunner.
func NewBillUseCase(
	txRunner TxRunner,
	customers CustomerLookup,
	users UserLookup,
	items ItemLookup,
	billRepo repository.BillRepository,
	billItemRepo repository.BillItemRepository,
) *BillUseCase {
	return &BillUseCase{
		txRunner:     txRunner,
		refs:         NewReferenceValidator(customers, users, items),
		prices:       NewPriceResolver(items),
		asm:          NewAssembler(customers, users, items),
		billRepo:     billRepo,
		billItemRepo: billItemRepo,
	}
}

// CreateBill runs the whole aggregation workflow for one bill. All
// validation happens before the first write; on any failure nothing is
// persisted. On success the returned total equals the sum of the returned
// line subtotals.
func (uc *BillUseCase) CreateBill(ctx context.Context, userID int64, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if err := uc.refs.EnsureUserExists(userID); err != nil {
		return nil, err
	}
	if err := uc.refs.EnsureCustomerExists(in.CustomerID); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.Validationf("Bill must contain at least one item.")
	}

	lines := make([]*entity.BillItem, 0, len(in.Items))
	grandTotal := decimal.Zero
	for _, req := range in.Items {
		if req.Quantity <= 0 {
			return nil, domain.Validationf("Quantity must be > 0 for item %d", req.ItemID)
		}
		if err := uc.refs.EnsureItemExists(req.ItemID); err != nil {
			return nil, err
		}
		unitPrice, err := uc.prices.PriceOf(req.ItemID)
		if err != nil {
			return nil, err
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
		grandTotal = grandTotal.Add(subtotal)
		lines = append(lines, &entity.BillItem{
			ItemID:   req.ItemID,
			Quantity: req.Quantity,
			Subtotal: subtotal,
		})
	}

	bill := &entity.Bill{
		CustomerID: in.CustomerID,
		UserID:     userID,
		BillDate:   time.Now(),
		Total:      grandTotal,
	}

	// Header insert, line batch and line reload share one transaction:
	// a failure after the header write rolls everything back, so no
	// orphaned header is ever visible to readers.
	var persisted []*entity.BillItem
	err := uc.txRunner.RunBill(ctx, func(billRepo repository.BillRepository, billItemRepo repository.BillItemRepository) error {
		if err := billRepo.Create(bill); err != nil {
			return err
		}
		for _, line := range lines {
			line.BillID = bill.ID
		}
		if err := billItemRepo.SaveItems(bill.ID, lines); err != nil {
			return err
		}
		// Reload to surface the generated line ids.
		reloaded, err := billItemRepo.FindByBillID(bill.ID)
		if err != nil {
			return err
		}
		persisted = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.asm.Bill(bill, persisted)
}

// GetAllBills returns every bill header as a denormalized projection,
// newest first, without lines.
func (uc *BillUseCase) GetAllBills(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := uc.billRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillResponse, 0, len(bills))
	for _, bill := range bills {
		resp, err := uc.asm.Header(bill)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// GetBill returns one bill with its lines.
func (uc *BillUseCase) GetBill(ctx context.Context, id int64) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.NotFound("bill", id)
	}
	lines, err := uc.billItemRepo.FindByBillID(id)
	if err != nil {
		return nil, err
	}
	return uc.asm.Bill(bill, lines)
}

// GetBillItems returns only the denormalized line items of a bill.
func (uc *BillUseCase) GetBillItems(ctx context.Context, id int64) ([]dto.BillItemResponse, error) {
	bill, err := uc.billRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.NotFound("bill", id)
	}
	lines, err := uc.billItemRepo.FindByBillID(id)
	if err != nil {
		return nil, err
	}
	return uc.asm.Lines(lines)
}
