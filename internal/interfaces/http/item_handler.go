package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/application/usecase"
)

// ItemHandler serves catalog item CRUD (protected).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create creates a catalog item.
// POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Record created successfully", out))
}

// List returns a page of items.
// GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Records retrieved successfully", out))
}

// GetByID returns one item.
// GET /api/items/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
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

// Update updates an item.
// PUT /api/items/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record updated successfully", out))
}

// Delete removes an item.
// DELETE /api/items/:id
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record deleted successfully", nil))
}
