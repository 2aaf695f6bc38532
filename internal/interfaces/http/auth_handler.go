package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/auth"
	"github.com/hwelikannage/pos-api/internal/application/dto"
)

// AuthHandler serves login (public).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifies credentials and returns a signed token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("Login successful", out))
}
