package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
)

// respondError translates a domain error into the HTTP status and error
// envelope. Driver details of persistence errors stay out of responses.
func respondError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", ve.Message))
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", nf.Error()))
	}
	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("DATABASE", "A database error occurred"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", "An unexpected error occurred"))
}
