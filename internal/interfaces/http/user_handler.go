package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/application/usecase"
)

// UserHandler serves staff user CRUD (ADMIN only).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create creates a staff user.
// POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("User registered successfully", out))
}

// List returns a page of users.
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Records retrieved successfully", out))
}

// GetByID returns one user.
// GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
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

// Update updates a user.
// PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record updated successfully", out))
}

// Delete removes a user.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "id must be a number"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Record deleted successfully", nil))
}
