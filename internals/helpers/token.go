// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}

// GetUserIDFromToken mengambil user_id (UUID) yang di-set auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

// GetUserRoleFromToken mengambil role yang di-set auth middleware.
func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role not found in token")
	}
	return role, nil
}
