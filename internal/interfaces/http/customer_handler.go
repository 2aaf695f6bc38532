package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/application/usecase"
)

// CustomerHandler serves customer CRUD (protected).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create creates a customer.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Record created successfully", out))
}

// List returns a page of customers.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Records retrieved successfully", out))
}

// GetByID returns one customer.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record fetched successfully", out))
}

// Update updates a customer.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record updated successfully", out))
}

// Delete removes a customer.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record deleted successfully", nil))
}
