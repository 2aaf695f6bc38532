package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/dto"
)

// BillService is the bill workflow surface the handler needs. Satisfied by
// *billing.BillUseCase; tests substitute a stub.
type BillService interface {
	CreateBill(ctx context.Context, userID int64, in dto.CreateBillRequest) (*dto.BillResponse, error)
	GetAllBills(ctx context.Context) ([]dto.BillResponse, error)
	GetBill(ctx context.Context, id int64) (*dto.BillResponse, error)
	GetBillItems(ctx context.Context, id int64) ([]dto.BillItemResponse, error)
}

// BillHandler serves the bill endpoints (protected).
type BillHandler struct {
	svc BillService
}

// NewBillHandler builds the handler.
func NewBillHandler(svc BillService) *BillHandler {
	return &BillHandler{svc: svc}
}

// Create creates a bill for the authenticated user.
// POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("UNAUTHORIZED", "login required"))
	}
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	bill, err := h.svc.CreateBill(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Bill created successfully", bill))
}

// List returns all bill headers, newest first.
// GET /api/bills
func (h *BillHandler) List(c *fiber.Ctx) error {
	bills, err := h.svc.GetAllBills(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Records retrieved successfully", bills))
}

// GetByID returns one bill with its lines.
// GET /api/bills/:id
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	bill, err := h.svc.GetBill(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record fetched successfully", bill))
}

// Items returns only the line items of a bill.
// GET /api/bills/:id/items
func (h *BillHandler) Items(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	items, err := h.svc.GetBillItems(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Records retrieved successfully", items))
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
