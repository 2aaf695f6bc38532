package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	pkgjwt "github.com/hwelikannage/pos-api/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthMiddleware validates the Bearer token and loads the acting user's
// id, username and role into c.Locals. The bill workflow takes its acting
// user id from here, never from a request body.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("MISSING_TOKEN", "Authorization header required"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("INVALID_TOKEN", "expected format: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("MISSING_TOKEN", "empty token"))
		}
		userID, username, role, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("INVALID_TOKEN", "invalid or expired token"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole allows the request through only when the authenticated role
// is one of allowedRoles. Must run after AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("MISSING_ROLE", "token carries no role"))
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("FORBIDDEN", "Access denied for current role"))
	}
}

// GetUserID returns the acting user id set by AuthMiddleware.
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUsername returns the authenticated username.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole returns the authenticated role.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
